// Package statetest provides helper functions to create tests using burrow states.
package statetest

import (
	"fmt"

	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/janpfeifer/must"
)

// Build a State from a compact layout: corridor is a string with one rune per corridor slot
// (CorridorLen runes, '.' for empty), and each of the NumBays bays is given top-to-bottom
// (index 0 nearest the corridor), with the same runes. All bays must have the same length, which
// becomes the depth of the State.
//
// Example, the canonical small puzzle: Build(".......", "BA", "CD", "BC", "DA").
//
// It panics on invalid layouts: it is meant to be used in tests only.
func Build(corridor string, bays ...string) State {
	if len(bays) != NumBays {
		panic(fmt.Sprintf("statetest.Build requires %d bays, got %d", NumBays, len(bays)))
	}
	if len([]rune(corridor)) != CorridorLen {
		panic(fmt.Sprintf("statetest.Build corridor must have %d slots, got %q", CorridorLen, corridor))
	}
	s := must.M1(NewState(len(bays[0])))
	for slot, r := range []rune(corridor) {
		s = s.With(CorridorPos(slot), mustCategory(r))
	}
	for bay, layout := range bays {
		if len(layout) != s.Depth() {
			panic(fmt.Sprintf("statetest.Build bay %d has depth %d, wanted %d", bay, len(layout), s.Depth()))
		}
		for depth, r := range []rune(layout) {
			s = s.With(BayPos(bay, depth), mustCategory(r))
		}
	}
	return s
}

func mustCategory(r rune) Category {
	if r == '.' {
		return NoCategory
	}
	return must.M1(ParseCategory(r))
}

// CanonicalShallow is the small example puzzle, with bays of depth 2. Its minimum cost is 12521.
func CanonicalShallow() State {
	return Build(".......", "BA", "CD", "BC", "DA")
}

// CanonicalDeep is CanonicalShallow with the rows "DCBA" and "DBAC" inserted in the middle of the
// bays. Its minimum cost is 44169.
func CanonicalDeep() State {
	return Build(".......", "BDDA", "CCBD", "BBAC", "DACA")
}
