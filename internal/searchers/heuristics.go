package searchers

import (
	"github.com/janpfeifer/amphipodGo/internal/generics"
	"github.com/janpfeifer/amphipodGo/internal/parameters"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/pkg/errors"
)

// Heuristic estimates the remaining cost from a state to the goal.
//
// To preserve the optimality of the searches, it must be admissible: it never returns more than
// the true remaining cost.
type Heuristic interface {
	Estimate(s State) uint64
	String() string
}

// ZeroHeuristic always estimates 0. It is trivially admissible, and turns A* into uniform-cost search.
type ZeroHeuristic struct{}

var _ Heuristic = ZeroHeuristic{}

// Estimate implements Heuristic.
func (ZeroHeuristic) Estimate(State) uint64 { return 0 }

func (ZeroHeuristic) String() string { return "zero" }

// LowerBound sums, for every token not yet settled, the energy of the shortest walk to its home bay,
// as if no other token were in the way.
//
// Each token entering a bay is counted as entering only its top slot, and the deeper slots that
// must be filled are added per category: if k tokens still have to enter the home bay, they fill
// at least the top k slots, an extra of 0+1+...+(k-1) steps.
type LowerBound struct{}

var _ Heuristic = LowerBound{}

func (LowerBound) String() string { return "lower_bound" }

// Estimate implements Heuristic.
func (LowerBound) Estimate(s State) uint64 {
	var steps [LastCategory]int
	var entering [LastCategory]int
	for slot := range CorridorLen {
		c := s.Corridor(slot)
		if c == NoCategory {
			continue
		}
		steps[c] += generics.Abs(CorridorColumn(slot)-EntranceColumn(c.HomeBay())) + 1
		entering[c]++
	}
	for bay := range NumBays {
		for depth := range s.Depth() {
			c := s.Bay(bay, depth)
			if c == NoCategory || s.SettledAt(bay, depth) {
				continue
			}
			home := c.HomeBay()
			if home == bay {
				// Blocking a foreigner below: out, one step aside, back and in again.
				steps[c] += depth + 4
			} else {
				steps[c] += depth + 1 + 2*generics.Abs(bay-home) + 1
			}
			entering[c]++
		}
	}
	var total uint64
	for _, c := range Categories {
		k := entering[c]
		total += uint64(steps[c]+k*(k-1)/2) * c.UnitCost()
	}
	return total
}

// RegisteredHeuristics maps the names accepted by the "heuristic" parameter to the heuristics.
var RegisteredHeuristics = map[string]Heuristic{
	ZeroHeuristic{}.String(): ZeroHeuristic{},
	LowerBound{}.String():    LowerBound{},
}

// HeuristicFromParams pops the "heuristic" parameter, and returns the corresponding heuristic.
// It defaults to ZeroHeuristic.
func HeuristicFromParams(params parameters.Params) (Heuristic, error) {
	name, err := parameters.PopParamOr(params, "heuristic", ZeroHeuristic{}.String())
	if err != nil {
		return nil, err
	}
	h, found := RegisteredHeuristics[name]
	if !found {
		return nil, errors.Errorf("unknown heuristic %q, valid values are %q", name, generics.SortedKeys(RegisteredHeuristics))
	}
	return h, nil
}
