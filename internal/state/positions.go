package state

import (
	"fmt"

	"github.com/janpfeifer/amphipodGo/internal/generics"
)

const (
	// CorridorLen is the number of corridor slots where a token may stop. The hallway has 11 cells,
	// but the 4 cells just outside the bays can't be stopped at, so they are not represented.
	CorridorLen = 7

	// NumBays is the number of bays, one per category.
	NumBays = 4

	// MaxDepth is the deepest bay supported.
	MaxDepth = 4

	// HallwayWidth is the number of cells in the hallway, including the bay entrances.
	HallwayWidth = 11
)

// corridorColumns maps a corridor slot to its hallway column.
var corridorColumns = [CorridorLen]int{0, 1, 3, 5, 7, 9, 10}

// CorridorColumn returns the hallway column (0 to HallwayWidth-1) of the corridor slot.
func CorridorColumn(slot int) int {
	return corridorColumns[slot]
}

// EntranceColumn returns the hallway column just outside the given bay.
func EntranceColumn(bay int) int {
	return 2*bay + 2
}

// LeftOf returns the corridor slot immediately to the left of the bay entrance. The slot
// immediately to the right is LeftOf(bay)+1.
func LeftOf(bay int) int {
	return bay + 1
}

// Distance in steps between corridor slot and the given bay slot (depth 0 is nearest the corridor).
// It doesn't account for any obstacles.
func Distance(corridorSlot, bay, depth int) int {
	return generics.Abs(CorridorColumn(corridorSlot)-EntranceColumn(bay)) + depth + 1
}

// Pos identifies one slot: either a corridor slot or a (bay, depth) slot.
type Pos struct {
	// InBay is false for corridor slots.
	InBay bool

	// Bay is only used if InBay is true.
	Bay uint8

	// Slot is the corridor index if in the corridor, or the depth within the bay (0 is nearest
	// the corridor).
	Slot uint8
}

// CorridorPos returns the position of the corridor slot.
func CorridorPos(slot int) Pos {
	return Pos{Slot: uint8(slot)}
}

// BayPos returns the position of the given depth of a bay.
func BayPos(bay, depth int) Pos {
	return Pos{InBay: true, Bay: uint8(bay), Slot: uint8(depth)}
}

// String returns "H<slot>" for corridor positions, or the home letter of the bay followed by the
// depth for bay positions (e.g. "B1" is the second slot of the bay for Bronze).
func (pos Pos) String() string {
	if !pos.InBay {
		return fmt.Sprintf("H%d", pos.Slot)
	}
	return fmt.Sprintf("%c%d", HomeOf(int(pos.Bay)).Letter(), pos.Slot)
}
