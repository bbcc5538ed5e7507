// Package searchers defines the contract of the search algorithms that find the cheapest
// sequence of moves to organize the burrow, along with the heuristics they can use.
//
// The implementations live in sub-packages, and register themselves so they can be created
// from a configuration string with New. Import _ "github.com/janpfeifer/amphipodGo/internal/searchers/default"
// to include all of them.
package searchers

import (
	"fmt"
	"slices"
	"time"

	"github.com/gomlx/exceptions"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/pkg/errors"
)

var (
	// ErrUnsolvable is returned when the search exhausts all reachable states without
	// reaching the goal.
	ErrUnsolvable = errors.New("no sequence of moves reaches the goal")

	// ErrExpansionLimit is returned when the search is interrupted by the configured
	// maximum number of expansions.
	ErrExpansionLimit = errors.New("maximum number of expansions reached")
)

// Searcher is the interface that any of the search algorithms must adhere to.
//
// Implementations hold only configuration: each call to Search owns its own frontier and
// cost tables, so a Searcher can be used concurrently on different states.
type Searcher interface {
	// Search returns the minimum total energy to move from initial to the goal state of the same
	// depth.
	//
	// It returns ErrUnsolvable if the goal is not reachable. Broken invariants of the
	// move generator are not recovered: they panic with a state.IllegalStateError.
	Search(initial State) (*Result, error)

	// String describes the searcher and its configuration.
	String() string
}

// Result of a successful search.
type Result struct {
	// Cost is the minimum total energy.
	Cost uint64

	// Path with the moves from the initial state to the goal. Only filled if the searcher
	// was configured to track it.
	Path []Move

	Stats Stats
}

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Expanded is the number of states whose successors were generated.
	Expanded int

	// Generated successors, including the ones discarded because they were not an improvement.
	Generated int

	// Improved counts the times a cheaper path was found to a state already seen.
	Improved int

	// MaxFrontier is the largest size of the frontier (or stack) during the search.
	MaxFrontier int

	// Elapsed time of the search.
	Elapsed time.Duration
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	perSecond := float64(s.Expanded) / max(s.Elapsed.Seconds(), 1e-9)
	return fmt.Sprintf("expanded=%d (%.0f/s), generated=%d, improved=%d, max_frontier=%d, elapsed=%s",
		s.Expanded, perSecond, s.Generated, s.Improved, s.MaxFrontier, s.Elapsed)
}

// SuccessorsFn is the signature of state.State.Successors and state.State.GreedySuccessors.
type SuccessorsFn func(State) []Successor

// SuccessorsFor returns the successors generator to use.
func SuccessorsFor(greedyHome bool) SuccessorsFn {
	if greedyHome {
		return State.GreedySuccessors
	}
	return State.Successors
}

// Parent records the state a state was reached from with its best known cost, and the move taken.
type Parent struct {
	Prev State
	Move Move
}

// BuildPath follows the parents from goal back to initial, and returns the moves in order.
//
// It panics if the chain of parents is broken or loops.
func BuildPath(parents map[State]Parent, initial, goal State) []Move {
	var path []Move
	for st := goal; st != initial; {
		p, found := parents[st]
		if !found || len(path) > len(parents) {
			exceptions.Panicf("broken path back from goal at state:\n%s", st)
		}
		path = append(path, p.Move)
		st = p.Prev
	}
	slices.Reverse(path)
	return path
}
