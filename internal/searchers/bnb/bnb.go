// Package bnb implements a depth-first branch and bound search for the cheapest way to
// organize the burrow.
//
// It explores the states depth-first, keeping the best cost found for each state and the cost of
// the best solution found so far, which is used to prune branches that can't improve on it.
// It only stops when all branches are explored or pruned, which proves the solution optimal.
package bnb

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/janpfeifer/amphipodGo/internal/parameters"
	"github.com/janpfeifer/amphipodGo/internal/searchers"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	searchers.Register("bnb", NewFromParams)
}

// Searcher implements the searchers.Searcher interface.
type Searcher struct {
	heuristic     searchers.Heuristic
	greedyHome    bool
	trackPath     bool
	maxExpansions int
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New returns a branch and bound searchers.Searcher with the zero heuristic.
func New() *Searcher {
	return &Searcher{heuristic: searchers.ZeroHeuristic{}, greedyHome: true}
}

// WithHeuristic sets the heuristic used to prune branches: a branch is dropped if its cost
// plus the estimate can't beat the best solution found so far. It must be admissible.
func (s *Searcher) WithHeuristic(h searchers.Heuristic) *Searcher {
	s.heuristic = h
	return s
}

// WithGreedyHome configures whether a corridor token that can move home is moved immediately.
// The default is true.
func (s *Searcher) WithGreedyHome(greedyHome bool) *Searcher {
	s.greedyHome = greedyHome
	return s
}

// WithPath configures the search to keep track of the moves taken, and return them in Result.Path.
func (s *Searcher) WithPath(trackPath bool) *Searcher {
	s.trackPath = trackPath
	return s
}

// WithMaxExpansions sets a limit on the number of states expanded. Use 0 (the default) for no limit.
func (s *Searcher) WithMaxExpansions(maxExpansions int) *Searcher {
	s.maxExpansions = max(maxExpansions, 0)
	return s
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	return fmt.Sprintf("bnb(heuristic=%s, greedy_home=%v)", s.heuristic, s.greedyHome)
}

type entry struct {
	state State
	cost  uint64
}

// Search implements searchers.Searcher.
func (s *Searcher) Search(initial State) (*searchers.Result, error) {
	start := time.Now()
	goal := Goal(initial.Depth())
	successors := searchers.SuccessorsFor(s.greedyHome)

	var stats searchers.Stats
	best := map[State]uint64{initial: 0}
	var parents map[State]searchers.Parent
	if s.trackPath {
		parents = make(map[State]searchers.Parent)
	}
	bound := uint64(math.MaxUint64)
	solved := false
	stack := []entry{{state: initial}}
	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]
		if current.cost > best[current.state] || current.cost+s.heuristic.Estimate(current.state) >= bound {
			// Superseded or can't beat the best solution anymore.
			continue
		}
		if current.state == goal {
			bound = current.cost
			solved = true
			klog.V(2).Infof("%s: found solution with cost %d after %d expansions", s, bound, stats.Expanded)
			continue
		}
		if s.maxExpansions > 0 && stats.Expanded >= s.maxExpansions {
			return nil, errors.WithMessagef(searchers.ErrExpansionLimit, "%s stopped after %d expansions", s, stats.Expanded)
		}

		stats.Expanded++
		next := successors(current.state)
		// Reverse order, so the first successor is the first explored.
		slices.Reverse(next)
		for _, succ := range next {
			stats.Generated++
			cost := current.cost + succ.Move.Cost
			if cost+s.heuristic.Estimate(succ.State) >= bound {
				continue
			}
			known, found := best[succ.State]
			if found && cost >= known {
				continue
			}
			if found {
				stats.Improved++
			}
			best[succ.State] = cost
			if parents != nil {
				parents[succ.State] = searchers.Parent{Prev: current.state, Move: succ.Move}
			}
			stack = append(stack, entry{state: succ.State, cost: cost})
		}
		stats.MaxFrontier = max(stats.MaxFrontier, len(stack))
	}
	if !solved {
		return nil, errors.WithMessagef(searchers.ErrUnsolvable, "%s exhausted %d states", s, len(best))
	}
	stats.Elapsed = time.Since(start)
	if klog.V(1).Enabled() {
		klog.Infof("%s: depth=%d, cost=%d, %s", s, initial.Depth(), bound, stats)
	}
	result := &searchers.Result{Cost: bound, Stats: stats}
	if s.trackPath {
		result.Path = searchers.BuildPath(parents, initial, goal)
	}
	return result, nil
}

// NewFromParams creates a branch and bound searcher from the parameters:
//
//   - heuristic: "zero" (default) or "lower_bound".
//   - greedy_home: bool, defaults to true.
//   - path: bool, defaults to false. See Searcher.WithPath.
//   - max_expansions: int, defaults to 0 (no limit).
func NewFromParams(params parameters.Params) (searchers.Searcher, error) {
	h, err := searchers.HeuristicFromParams(params)
	if err != nil {
		return nil, err
	}
	s := New().WithHeuristic(h)
	greedyHome, err := parameters.PopParamOr(params, "greedy_home", s.greedyHome)
	if err != nil {
		return nil, err
	}
	trackPath, err := parameters.PopParamOr(params, "path", s.trackPath)
	if err != nil {
		return nil, err
	}
	maxExpansions, err := parameters.PopParamOr(params, "max_expansions", s.maxExpansions)
	if err != nil {
		return nil, err
	}
	return s.WithGreedyHome(greedyHome).WithPath(trackPath).WithMaxExpansions(maxExpansions), nil
}
