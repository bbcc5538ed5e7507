// Package astar implements a best-first search (A*) for the cheapest way to organize the burrow.
//
// With the default searchers.ZeroHeuristic it degrades to a uniform-cost (Dijkstra) search.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/janpfeifer/amphipodGo/internal/searchers"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Searcher implements the searchers.Searcher interface.
//
// It holds only configuration, each Search call has its own frontier and table of best costs.
type Searcher struct {
	heuristic     searchers.Heuristic
	greedyHome    bool
	trackPath     bool
	maxExpansions int
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// New returns an A* based searchers.Searcher, using the zero heuristic.
// See the methods Searcher.With... for optional configurations.
//
// See: wikipedia.org/wiki/A*_search_algorithm
func New() *Searcher {
	return &Searcher{
		heuristic:  searchers.ZeroHeuristic{},
		greedyHome: true,
	}
}

// WithHeuristic sets the heuristic used to order the frontier. It must be admissible, otherwise
// the cost returned may not be the minimum.
//
// The default is searchers.ZeroHeuristic.
func (s *Searcher) WithHeuristic(h searchers.Heuristic) *Searcher {
	s.heuristic = h
	return s
}

// WithGreedyHome configures whether a token in the corridor that can move home is moved
// immediately, without considering the alternatives. It doesn't change the cost found, but
// reduces the number of states explored.
//
// The default is true.
func (s *Searcher) WithGreedyHome(greedyHome bool) *Searcher {
	s.greedyHome = greedyHome
	return s
}

// WithPath configures the search to keep track of the moves taken, and return them in Result.Path.
// It costs some extra memory.
func (s *Searcher) WithPath(trackPath bool) *Searcher {
	s.trackPath = trackPath
	return s
}

// WithMaxExpansions sets a limit on the number of states expanded, after which Search returns
// searchers.ErrExpansionLimit. Use 0 (the default) for no limit.
func (s *Searcher) WithMaxExpansions(maxExpansions int) *Searcher {
	s.maxExpansions = max(maxExpansions, 0)
	return s
}

// String implements searchers.Searcher.
func (s *Searcher) String() string {
	return fmt.Sprintf("astar(heuristic=%s, greedy_home=%v)", s.heuristic, s.greedyHome)
}

// progressEvery is the number of expansions between progress logs, at verbosity level 2.
const progressEvery = 100_000

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
	open := &frontier{}
	var seq uint64
	push := func(st State, cost uint64) {
		heap.Push(open, node{state: st, cost: cost, estimate: cost + s.heuristic.Estimate(st), seq: seq})
		seq++
		stats.MaxFrontier = max(stats.MaxFrontier, open.Len())
	}

	push(initial, 0)
	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		if current.cost > best[current.state] {
			// Superseded by a cheaper path found after it was pushed.
			continue
		}
		if current.state == goal {
			stats.Elapsed = time.Since(start)
			result := &searchers.Result{Cost: current.cost, Stats: stats}
			if s.trackPath {
				result.Path = searchers.BuildPath(parents, initial, goal)
			}
			if klog.V(1).Enabled() {
				klog.Infof("%s: depth=%d, cost=%d, %s", s, initial.Depth(), result.Cost, stats)
			}
			return result, nil
		}
		if s.maxExpansions > 0 && stats.Expanded >= s.maxExpansions {
			return nil, errors.WithMessagef(searchers.ErrExpansionLimit, "%s stopped after %d expansions", s, stats.Expanded)
		}

		stats.Expanded++
		if klog.V(2).Enabled() && stats.Expanded%progressEvery == 0 {
			klog.Infof("%s: expanded=%d, frontier=%d, known states=%d, current estimate=%d",
				s, stats.Expanded, open.Len(), len(best), current.estimate)
		}
		for _, succ := range successors(current.state) {
			stats.Generated++
			cost := current.cost + succ.Move.Cost
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
			push(succ.State, cost)
		}
	}
	return nil, errors.WithMessagef(searchers.ErrUnsolvable, "%s exhausted %d states", s, len(best))
}

// node is an entry in the frontier.
type node struct {
	state    State
	cost     uint64 // Cumulative cost to reach state.
	estimate uint64 // cost + heuristic.
	seq      uint64 // Insertion order.
}

// frontier implements heap.Interface: it pops the lowest estimate first, then the highest cost (closer
// to the goal), then the oldest entry.
type frontier []node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].estimate != f[j].estimate {
		return f[i].estimate < f[j].estimate
	}
	if f[i].cost != f[j].cost {
		return f[i].cost > f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}
