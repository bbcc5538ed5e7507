package astar

import (
	"github.com/janpfeifer/amphipodGo/internal/parameters"
	"github.com/janpfeifer/amphipodGo/internal/searchers"
)

func init() {
	searchers.Register("astar", NewFromParams)
}

// NewFromParams creates an A* searcher from the parameters:
//
//   - heuristic: "zero" (default) or "lower_bound".
//   - greedy_home: bool, defaults to true. See Searcher.WithGreedyHome.
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
