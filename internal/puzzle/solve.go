package puzzle

import (
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/amphipodGo/internal/searchers"
	. "github.com/janpfeifer/amphipodGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Variant of the puzzle: the board as given, or unfolded with UnfoldRows.
type Variant int

const (
	Folded Variant = iota
	Unfolded
	NumVariants
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Folded:
		return "folded"
	case Unfolded:
		return "unfolded"
	default:
		return "unknown"
	}
}

// Answer holds the initial state and search result of each variant, indexed by Variant.
type Answer struct {
	Initial [NumVariants]State
	Results [NumVariants]*searchers.Result
	Elapsed time.Duration
}

// Cost of the given variant.
func (a *Answer) Cost(v Variant) uint64 {
	return a.Results[v].Cost
}

// Parse parses the text board and its unfolded version.
func Parse(text string) (initial [NumVariants]State, err error) {
	initial[Folded], err = ParseBoard(text)
	if err != nil {
		err = errors.WithMessagef(err, "parsing the %s board", Folded)
		return
	}
	var unfoldedText string
	unfoldedText, err = Unfold(text)
	if err == nil {
		initial[Unfolded], err = ParseBoard(unfoldedText)
	}
	if err != nil {
		err = errors.WithMessagef(err, "parsing the %s board", Unfolded)
	}
	return
}

// Solve parses the text board and searches the minimum cost of both variants, in order, or
// concurrently if parallel is true.
//
// The searcher must not keep state across calls to Search: when parallel it is called from
// two goroutines.
func Solve(text string, searcher searchers.Searcher, parallel bool) (*Answer, error) {
	start := time.Now()
	initial, err := Parse(text)
	if err != nil {
		return nil, err
	}
	answer := &Answer{Initial: initial}

	var g errgroup.Group
	if !parallel {
		g.SetLimit(1)
	}
	for v := range NumVariants {
		g.Go(func() error {
			result, err := solveVariant(searcher, v, initial[v])
			if err != nil {
				return err
			}
			answer.Results[v] = result
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	answer.Elapsed = time.Since(start)
	return answer, nil
}

// solveVariant runs the search, converting panics of the state invariants into errors.
func solveVariant(searcher searchers.Searcher, v Variant, initial State) (result *searchers.Result, err error) {
	klog.V(1).Infof("Searching the %s variant (depth %d) with %s", v, initial.Depth(), searcher)
	panicErr := exceptions.TryCatch[error](func() {
		result, err = searcher.Search(initial)
	})
	if panicErr != nil {
		err = panicErr
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "solving the %s variant", v)
	}
	if klog.V(1).Enabled() {
		klog.Infof("Variant %s: cost=%d, %s", v, result.Cost, result.Stats)
	}
	return result, nil
}
