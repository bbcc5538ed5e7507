package bnb

import (
	"testing"

	"github.com/janpfeifer/amphipodGo/internal/searchers"
	"github.com/janpfeifer/amphipodGo/internal/searchers/astar"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	. "github.com/janpfeifer/amphipodGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCanonical(t *testing.T) {
	result, err := New().WithHeuristic(searchers.LowerBound{}).Search(CanonicalShallow())
	require.NoError(t, err)
	assert.Equal(t, uint64(12521), result.Cost)
}

func TestSearchCanonicalDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep variant in short mode")
	}
	result, err := New().WithHeuristic(searchers.LowerBound{}).Search(CanonicalDeep())
	require.NoError(t, err)
	assert.Equal(t, uint64(44169), result.Cost)
}

// TestAgreesWithAStar compares both searchers on states along random walks from the
// canonical puzzle.
func TestAgreesWithAStar(t *testing.T) {
	reference := astar.New().WithHeuristic(searchers.LowerBound{})
	searcher := New().WithHeuristic(searchers.LowerBound{})
	s := CanonicalShallow()
	for step := 0; step < 6; step++ {
		want, wantErr := reference.Search(s)
		got, err := searcher.Search(s)
		if wantErr != nil {
			// Random walks may park tokens in the corridor in a dead-lock.
			require.True(t, errors.Is(wantErr, searchers.ErrUnsolvable), "got %v", wantErr)
			require.True(t, errors.Is(err, searchers.ErrUnsolvable), "got %v", err)
			break
		}
		require.NoError(t, err)
		require.Equalf(t, want.Cost, got.Cost, "step %d, state:\n%s", step, s)

		successors := s.Successors()
		if len(successors) == 0 {
			break
		}
		s = successors[(step*7)%len(successors)].State
	}
}

func TestSearchTrivialAndUnsolvable(t *testing.T) {
	result, err := New().Search(Goal(4))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), result.Cost)
	assert.Equal(t, 0, result.Stats.Expanded)

	_, err = New().Search(Build(".......", "B", "A", ".", "."))
	assert.True(t, errors.Is(err, searchers.ErrUnsolvable), "got %v", err)

	_, err = New().WithMaxExpansions(3).Search(CanonicalShallow())
	assert.True(t, errors.Is(err, searchers.ErrExpansionLimit), "got %v", err)
}

func TestNewFromParams(t *testing.T) {
	s, err := searchers.New("bnb:heuristic=lower_bound,greedy_home=false")
	require.NoError(t, err)
	assert.Equal(t, "bnb(heuristic=lower_bound, greedy_home=false)", s.String())

	s, err = searchers.New("bnb:path,max_expansions=9")
	require.NoError(t, err)
	assert.True(t, s.(*Searcher).trackPath)
	assert.Equal(t, 9, s.(*Searcher).maxExpansions)

	_, err = searchers.New("bnb:path=maybe")
	assert.Error(t, err)
}

func TestSearchPath(t *testing.T) {
	initial := CanonicalShallow()
	result, err := New().WithHeuristic(searchers.LowerBound{}).WithPath(true).Search(initial)
	require.NoError(t, err)
	require.NotEmpty(t, result.Path)

	s := initial
	var total uint64
	for _, m := range result.Path {
		s = s.Apply(m)
		total += m.Cost
	}
	assert.True(t, s.IsGoal())
	assert.Equal(t, uint64(12521), total)

	// Without path tracking, no path is returned.
	result, err = New().WithHeuristic(searchers.LowerBound{}).Search(initial)
	require.NoError(t, err)
	assert.Empty(t, result.Path)
}
