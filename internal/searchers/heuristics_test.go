package searchers_test

import (
	"math/rand/v2"
	"testing"

	. "github.com/janpfeifer/amphipodGo/internal/searchers"
	"github.com/janpfeifer/amphipodGo/internal/searchers/astar"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	. "github.com/janpfeifer/amphipodGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroHeuristic(t *testing.T) {
	assert.Equal(t, uint64(0), ZeroHeuristic{}.Estimate(CanonicalDeep()))
}

func TestLowerBound(t *testing.T) {
	h := LowerBound{}
	assert.Equal(t, uint64(0), h.Estimate(Goal(2)))
	assert.Equal(t, uint64(0), h.Estimate(Goal(4)))

	// Desert one step from the entrance of its bay.
	assert.Equal(t, uint64(2000), h.Estimate(Build(".....D.", "AA", "BB", "CC", ".D")))

	// Bronze must leave the Amber bay (4 steps), Amber must leave the Bronze bay (4 steps).
	assert.Equal(t, uint64(44), h.Estimate(Build(".......", "BA", "AB", "CC", "DD")))

	// Amber at home, but on top of a foreign Bronze, must step out, aside, back and in (4 steps).
	// The Bronze below walks 2 steps up, 2 along the corridor and 1 into its bay, on top of the
	// settled Bronze.
	assert.Equal(t, uint64(4+5*10), h.Estimate(Build(".......", "AB", ".B", "CC", "DD")))
}

// TestLowerBoundAdmissible checks that along the optimal path of the canonical puzzles the
// estimate never exceeds the cost actually remaining.
func TestLowerBoundAdmissible(t *testing.T) {
	for _, initial := range []State{CanonicalShallow(), CanonicalDeep()} {
		result, err := astar.New().WithPath(true).Search(initial)
		require.NoError(t, err)
		remaining := result.Cost
		s := initial
		for _, m := range result.Path {
			require.LessOrEqualf(t, LowerBound{}.Estimate(s), remaining, "state:\n%s", s)
			s = s.Apply(m)
			remaining -= m.Cost
		}
		assert.Equal(t, uint64(0), remaining)
		assert.True(t, s.IsGoal())
	}
}

// TestLowerBoundAdmissibleRandom compares the estimate with the exact remaining cost, found by
// an exhaustive uniform-cost search, on states reached by random walks.
func TestLowerBoundAdmissibleRandom(t *testing.T) {
	exact := astar.New().WithGreedyHome(false)
	greedy := astar.New().WithHeuristic(LowerBound{})
	rng := rand.New(rand.NewPCG(23, 2021))
	starts := []State{
		CanonicalShallow(),
		Build(".......", "BA", "AB", "CC", "DD"),
		Build(".......", "DA", "CB", "BC", "AD"),
	}
	var checked int
	for _, start := range starts {
		for range 15 {
			s := start
			for range rng.IntN(6) {
				successors := s.Successors()
				if len(successors) == 0 {
					break
				}
				s = successors[rng.IntN(len(successors))].State
			}
			want, err := exact.Search(s)
			if errors.Is(err, ErrUnsolvable) {
				// Random walks may lock tokens in the corridor.
				continue
			}
			require.NoError(t, err)
			require.LessOrEqualf(t, LowerBound{}.Estimate(s), want.Cost, "state:\n%s", s)

			got, err := greedy.Search(s)
			require.NoError(t, err)
			require.Equalf(t, want.Cost, got.Cost, "state:\n%s", s)
			checked++
		}
	}
	assert.Greater(t, checked, 15)
}

func TestHeuristicFromParams(t *testing.T) {
	h, err := HeuristicFromParams(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, ZeroHeuristic{}, h)

	params := map[string]string{"heuristic": "lower_bound"}
	h, err = HeuristicFromParams(params)
	require.NoError(t, err)
	assert.Equal(t, LowerBound{}, h)
	assert.Empty(t, params)

	_, err = HeuristicFromParams(map[string]string{"heuristic": "manhattan"})
	assert.Error(t, err)
}

func TestStatsString(t *testing.T) {
	s := Stats{Expanded: 10, Generated: 30, Improved: 2, MaxFrontier: 9}
	assert.Contains(t, s.String(), "expanded=10")
	assert.Contains(t, s.String(), "max_frontier=9")
}
