package searchers

import (
	"strings"

	"github.com/janpfeifer/amphipodGo/internal/generics"
	"github.com/janpfeifer/amphipodGo/internal/parameters"
	"github.com/pkg/errors"
)

// Builder creates a Searcher from the parameters. It should pop the parameters it uses from params:
// the ones left over are reported as unknown.
type Builder func(params parameters.Params) (Searcher, error)

var (
	// Registered searchers builders, by name.
	registeredBuilders = make(map[string]Builder)
)

// DefaultConfig is used by New if no configuration is given.
var DefaultConfig = "astar:heuristic=lower_bound"

// Register a searcher builder, so it can be created by New. It is meant to be called from
// the init() function of the searcher's package.
func Register(name string, builder Builder) {
	registeredBuilders[name] = builder
}

// New creates a Searcher given the configuration string.
//
// The config is the searcher name, optionally followed by a colon (":") and a comma-separated list of
// parameters with optional values. E.g.: "astar:heuristic=lower_bound,greedy_home=false".
// If empty, DefaultConfig is used.
//
// Parameters are dependent on the searcher.
func New(config string) (Searcher, error) {
	if config == "" {
		config = DefaultConfig
	}
	if len(registeredBuilders) == 0 {
		return nil, errors.New("no registered searchers. Perhaps you need to import _ \"github.com/janpfeifer/amphipodGo/internal/searchers/default\" to your binary ?")
	}
	name, paramsConfig, _ := strings.Cut(config, ":")
	builder, found := registeredBuilders[name]
	if !found {
		return nil, errors.Errorf("unknown searcher %q, registered searchers are %q", name, generics.SortedKeys(registeredBuilders))
	}
	params := parameters.NewFromConfigString(paramsConfig)
	searcher, err := builder(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create searcher %q", name)
	}
	if err := parameters.CheckConsumed(params); err != nil {
		return nil, errors.WithMessagef(err, "searcher %q", config)
	}
	return searcher, nil
}
