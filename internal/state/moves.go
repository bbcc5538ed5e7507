package state

import (
	"fmt"
)

// MoveKind tags the two classes of legal moves.
type MoveKind uint8

const (
	// CorridorToBay moves a token from the corridor into the deepest free slot of its home bay.
	CorridorToBay MoveKind = iota

	// BayToCorridor moves the top token of an unsettled bay to a free corridor slot.
	BayToCorridor
)

// String implements fmt.Stringer.
func (k MoveKind) String() string {
	switch k {
	case CorridorToBay:
		return "CorridorToBay"
	case BayToCorridor:
		return "BayToCorridor"
	}
	return fmt.Sprintf("MoveKind(%d)", uint8(k))
}

// Move describes the relocation of exactly one token.
type Move struct {
	Kind     MoveKind
	Category Category
	From, To Pos

	// Steps walked by the token, and Cost = Steps * Category.UnitCost().
	Steps int
	Cost  uint64
}

func (m Move) String() string {
	return fmt.Sprintf("Move %c: %s->%s (%d steps, energy=%d)", m.Category.Letter(), m.From, m.To, m.Steps, m.Cost)
}

func newMove(kind MoveKind, c Category, from, to Pos, steps int) Move {
	return Move{Kind: kind, Category: c, From: from, To: to, Steps: steps, Cost: uint64(steps) * c.UnitCost()}
}

// Successor is a State reachable in one move, and the move that leads to it.
// Move.Cost is the incremental cost of the transition.
type Successor struct {
	State State
	Move  Move
}

// Moves enumerates all legal moves from the state.
//
// Corridor to home bay moves come first, then bay to corridor moves, each in order of
// corridor slot / bay index, so the order is deterministic.
func (s State) Moves() []Move {
	moves := make([]Move, 0, 2*CorridorLen)
	for slot := range CorridorLen {
		if m, ok := s.homeMove(slot); ok {
			moves = append(moves, m)
		}
	}
	for bay := range NumBays {
		moves = s.appendExitMoves(moves, bay)
	}
	return moves
}

// Successors returns the states reachable by applying each of the legal moves.
func (s State) Successors() []Successor {
	moves := s.Moves()
	successors := make([]Successor, len(moves))
	for ii, m := range moves {
		successors[ii] = Successor{State: s.Apply(m), Move: m}
	}
	return successors
}

// GreedySuccessors is like Successors, except that if any token in the corridor can move home,
// only that move (the first one found) is returned.
//
// This never loses the optimal solution: every token entering a bay is of the same category, so the
// total entering cost of a bay doesn't depend on the order, and moving home only frees
// the corridor.
func (s State) GreedySuccessors() []Successor {
	for slot := range CorridorLen {
		if m, ok := s.homeMove(slot); ok {
			return []Successor{{State: s.Apply(m), Move: m}}
		}
	}
	return s.Successors()
}

// homeMove returns the move of the token at the corridor slot into its home bay, if the bay
// holds no foreign token and the path through the corridor is free.
func (s State) homeMove(slot int) (m Move, ok bool) {
	c := s.corridor[slot]
	if c == NoCategory {
		return
	}
	bay := c.HomeBay()
	if !s.Settled(bay) {
		// It has to wait for the foreign tokens to leave.
		return
	}
	depth := s.FreeSlot(bay)
	if depth < 0 {
		illegalStatef("bay %d is full of %s, but there is one more at corridor slot %d", bay, c, slot)
	}
	if !s.corridorClear(slot, bay) {
		return
	}
	return newMove(CorridorToBay, c, CorridorPos(slot), BayPos(bay, depth), Distance(slot, bay, depth)), true
}

// corridorClear returns whether the corridor slots between the given slot (exclusive) and the
// entrance of the bay are all free.
func (s State) corridorClear(slot, bay int) bool {
	left := LeftOf(bay)
	if slot <= left {
		for ii := slot + 1; ii <= left; ii++ {
			if s.corridor[ii] != NoCategory {
				return false
			}
		}
		return true
	}
	for ii := left + 1; ii < slot; ii++ {
		if s.corridor[ii] != NoCategory {
			return false
		}
	}
	return true
}

// appendExitMoves appends the moves of the top token of the bay to every reachable free
// corridor slot, to the left and to the right of the entrance.
//
// Settled bays (including empty ones) are never disturbed.
func (s State) appendExitMoves(moves []Move, bay int) []Move {
	if s.Settled(bay) {
		return moves
	}
	depth := s.Top(bay)
	c := s.bays[bay][depth]
	from := BayPos(bay, depth)
	for slot := LeftOf(bay); slot >= 0 && s.corridor[slot] == NoCategory; slot-- {
		moves = append(moves, newMove(BayToCorridor, c, from, CorridorPos(slot), Distance(slot, bay, depth)))
	}
	for slot := LeftOf(bay) + 1; slot < CorridorLen && s.corridor[slot] == NoCategory; slot++ {
		moves = append(moves, newMove(BayToCorridor, c, from, CorridorPos(slot), Distance(slot, bay, depth)))
	}
	return moves
}

// Apply returns the state after the move is taken.
//
// It panics with an IllegalStateError if the source doesn't hold the moving token, if the target
// is occupied, or if the token would be left floating over an empty bay slot.
func (s State) Apply(m Move) State {
	if m.Category == NoCategory {
		illegalStatef("%s: moving an empty slot", m)
	}
	if got := s.At(m.From); got != m.Category {
		illegalStatef("%s: source holds %s", m, got)
	}
	if got := s.At(m.To); got != NoCategory {
		illegalStatef("%s: target occupied by %s", m, got)
	}
	if m.To.InBay && int(m.To.Slot)+1 < s.Depth() && s.bays[m.To.Bay][m.To.Slot+1] == NoCategory {
		illegalStatef("%s: target is not the deepest free slot", m)
	}
	return s.With(m.From, NoCategory).With(m.To, m.Category)
}
