// Package state holds the representation of the burrow: the tokens (amphipods) categories,
// the corridor and bays geometry, and the State snapshot, along with the legal moves
// that lead from one State to the next.
package state

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// State is a compact and comparable snapshot of the burrow: it can be used directly as a map key.
//
// Each slot holds the Category of its occupant, or NoCategory if empty. The depth of the bays is
// fixed at construction: slots deeper than depth are never used and always hold NoCategory.
//
// States are values: methods never change the receiver, they return new states instead.
type State struct {
	corridor [CorridorLen]Category
	bays     [NumBays][MaxDepth]Category
	depth    uint8
}

// NewState creates an empty State with bays of the given depth.
func NewState(depth int) (State, error) {
	if depth < 1 || depth > MaxDepth {
		return State{}, errors.Errorf("invalid bay depth %d, it must be between 1 and %d", depth, MaxDepth)
	}
	return State{depth: uint8(depth)}, nil
}

// Goal returns the unique winning state for the given depth: corridor empty and every
// bay filled with its home category.
//
// It panics if depth is out of range.
func Goal(depth int) State {
	s, err := NewState(depth)
	if err != nil {
		exceptions.Panicf("goal state: %v", err)
	}
	for bay := range NumBays {
		for d := range depth {
			s.bays[bay][d] = HomeOf(bay)
		}
	}
	return s
}

// Depth of the bays.
func (s State) Depth() int {
	return int(s.depth)
}

// Corridor returns the occupant of the corridor slot.
func (s State) Corridor(slot int) Category {
	return s.corridor[slot]
}

// Bay returns the occupant of the bay, at the given depth.
func (s State) Bay(bay, depth int) Category {
	return s.bays[bay][depth]
}

// At returns the occupant at the given position.
func (s State) At(pos Pos) Category {
	if pos.InBay {
		return s.bays[pos.Bay][pos.Slot]
	}
	return s.corridor[pos.Slot]
}

// With returns a copy of the state with the given position set to c (NoCategory to empty it).
// It doesn't check any of the burrow rules, except that the position exists.
func (s State) With(pos Pos, c Category) State {
	if pos.InBay {
		if int(pos.Bay) >= NumBays || pos.Slot >= s.depth {
			illegalStatef("position %s out of range for depth %d", pos, s.depth)
		}
		s.bays[pos.Bay][pos.Slot] = c
	} else {
		if int(pos.Slot) >= CorridorLen {
			illegalStatef("corridor position %s out of range", pos)
		}
		s.corridor[pos.Slot] = c
	}
	return s
}

// IsGoal returns whether all tokens are in their home bays.
func (s State) IsGoal() bool {
	return s == Goal(s.Depth())
}

// Top returns the depth of the shallowest occupied slot of the bay, or -1 if the bay is empty.
func (s State) Top(bay int) int {
	for d := range s.Depth() {
		if s.bays[bay][d] != NoCategory {
			return d
		}
	}
	return -1
}

// FreeSlot returns the depth of the deepest empty slot of the bay, or -1 if the bay is full.
func (s State) FreeSlot(bay int) int {
	for d := s.Depth() - 1; d >= 0; d-- {
		if s.bays[bay][d] == NoCategory {
			return d
		}
	}
	return -1
}

// Settled returns whether every occupant of the bay belongs to its home category.
// An empty bay is settled.
func (s State) Settled(bay int) bool {
	home := HomeOf(bay)
	for d := range s.Depth() {
		if c := s.bays[bay][d]; c != NoCategory && c != home {
			return false
		}
	}
	return true
}

// SettledAt returns whether the token at the given bay slot is home and has only tokens of its own
// category below it: it will never need to move again.
func (s State) SettledAt(bay, depth int) bool {
	home := HomeOf(bay)
	for d := depth; d < s.Depth(); d++ {
		if s.bays[bay][d] != home {
			return false
		}
	}
	return true
}

// Counts returns the number of tokens of each category, indexed by Category (index 0, NoCategory,
// counts the empty slots).
func (s State) Counts() (counts [LastCategory]int) {
	for _, c := range s.corridor {
		counts[c]++
	}
	for bay := range NumBays {
		for d := range s.Depth() {
			counts[s.bays[bay][d]]++
		}
	}
	return
}

// NumTokens returns the number of tokens in the burrow.
func (s State) NumTokens() int {
	counts := s.Counts()
	return s.Depth()*NumBays + CorridorLen - counts[NoCategory]
}

// String renders the state as the text board, in the same format read by the puzzle parser.
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", HallwayWidth+2))
	sb.WriteByte('\n')

	hallway := []rune(strings.Repeat(".", HallwayWidth))
	for slot, c := range s.corridor {
		hallway[CorridorColumn(slot)] = c.Letter()
	}
	sb.WriteByte('#')
	sb.WriteString(string(hallway))
	sb.WriteString("#\n")

	for d := range s.Depth() {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for bay := range NumBays {
			sb.WriteRune(s.bays[bay][d].Letter())
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	sb.WriteString(strings.Repeat("#", 2*NumBays+1))
	sb.WriteByte('\n')
	return sb.String()
}
