package puzzle

import (
	"testing"

	"github.com/janpfeifer/amphipodGo/internal/searchers"
	"github.com/janpfeifer/amphipodGo/internal/searchers/astar"
	_ "github.com/janpfeifer/amphipodGo/internal/searchers/default"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	. "github.com/janpfeifer/amphipodGo/internal/state/statetest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	s, err := ParseBoard(Example)
	require.NoError(t, err)
	assert.Equal(t, CanonicalShallow(), s)
	assert.Equal(t, Example, s.String())

	// Windows line endings, leading empty lines and no trailing new line.
	s, err = ParseBoard("\n\r\n#############\r\n#...........#\r\n###B#C#B#D###\r\n  #A#D#C#A#\r\n  #########")
	require.NoError(t, err)
	assert.Equal(t, CanonicalShallow(), s)

	// Tokens in the corridor and an emptied bay slot.
	board := "#############\n" +
		"#A.........D#\n" +
		"###.#B#C#.###\n" +
		"  #A#B#C#D#\n" +
		"  #########\n"
	s, err = ParseBoard(board)
	require.NoError(t, err)
	assert.Equal(t, Build("A.....D", ".A", "BB", "CC", ".D"), s)
	assert.Equal(t, board, s.String())
}

func TestParseBoardErrors(t *testing.T) {
	testCases := []struct {
		name         string
		board        string
		line, column int
	}{
		{"empty", "", 1, 1},
		{"top wall", "####.########\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n", 1, 1},
		{"hallway width", "#############\n#..........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n", 2, 1},
		{"entrance", "#############\n#..A........#\n###.#C#B#D###\n  #A#D#C#A#\n  #########\n", 2, 4},
		{"hallway letter", "#############\n#.E.........#\n###B#C#B#D###\n  #A#D#C#A#\n  #########\n", 2, 3},
		{"bay letter", "#############\n#...........#\n###B#C#X#D###\n  #A#D#C#A#\n  #########\n", 3, 8},
		{"bay walls", "#############\n#...........#\n###B#C#B#D###\n  #A#D.C#A#\n  #########\n", 4, 5},
		{"short row", "#############\n#...........#\n###B#C#B#D###\n  #A#D#\n  #########\n", 4, 8},
		{"floating", "#############\n#A..........#\n###B#C#B#D###\n  #.#D#C#A#\n  #########\n", 4, 4},
		{"no closing wall", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#A#\n", 5, 1},
		{"counts", "#############\n#...........#\n###B#C#B#D###\n  #A#D#C#D#\n  #########\n", 0, 0},
		{"too deep", "#############\n#...........#\n" + "###B#C#B#D###\n" +
			"  #A#D#C#A#\n  #A#D#C#A#\n  #A#D#C#A#\n  #A#D#C#A#\n  #########\n", 3, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.board)
			var parseErr *ParseError
			require.Truef(t, errors.As(err, &parseErr), "expected a ParseError, got %v", err)
			assert.Equal(t, tc.line, parseErr.Line, "line of %q", parseErr)
			assert.Equal(t, tc.column, parseErr.Column, "column of %q", parseErr)
		})
	}
}

func TestUnfold(t *testing.T) {
	unfolded, err := Unfold(Example)
	require.NoError(t, err)
	want := "#############\n" +
		"#...........#\n" +
		"###B#C#B#D###\n" +
		"  #D#C#B#A#\n" +
		"  #D#B#A#C#\n" +
		"  #A#D#C#A#\n" +
		"  #########\n"
	assert.Equal(t, want, unfolded)

	s, err := ParseBoard(unfolded)
	require.NoError(t, err)
	assert.Equal(t, CanonicalDeep(), s)

	_, err = Unfold("#############\n#...........#\n")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	initial, err := Parse(Example)
	require.NoError(t, err)
	assert.Equal(t, CanonicalShallow(), initial[Folded])
	assert.Equal(t, CanonicalDeep(), initial[Unfolded])

	// Unfolding a board that is already deep goes beyond the maximum depth.
	deep, err := Unfold(Example)
	require.NoError(t, err)
	_, err = Parse(deep)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "got %v", err)
	assert.Contains(t, err.Error(), Unfolded.String())
}

func TestSolve(t *testing.T) {
	searcher, err := searchers.New(searchers.DefaultConfig)
	require.NoError(t, err)
	for _, parallel := range []bool{false, true} {
		answer, err := Solve(Example, searcher, parallel)
		require.NoError(t, err)
		assert.Equal(t, uint64(12521), answer.Cost(Folded))
		assert.Equal(t, uint64(44169), answer.Cost(Unfolded))
		assert.Equal(t, CanonicalDeep(), answer.Initial[Unfolded])
		assert.Positive(t, answer.Elapsed)
	}
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve("not a board", astar.New(), false)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "got %v", err)

	_, err = Solve(Example, astar.New().WithMaxExpansions(5), true)
	assert.True(t, errors.Is(err, searchers.ErrExpansionLimit), "got %v", err)
}

// panicSearcher breaks the move generator invariants.
type panicSearcher struct{}

func (panicSearcher) Search(initial State) (*searchers.Result, error) {
	initial.Apply(Move{})
	return nil, nil
}

func (panicSearcher) String() string { return "panic" }

func TestSolveRecoversIllegalState(t *testing.T) {
	_, err := Solve(Example, panicSearcher{}, false)
	var illegalErr *IllegalStateError
	assert.True(t, errors.As(err, &illegalErr), "got %v", err)
}
