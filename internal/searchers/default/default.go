// Package _default registers all the searchers that can be included in any front-end
// for amphipodGo: astar and bnb.
package _default

import (
	_ "github.com/janpfeifer/amphipodGo/internal/searchers/astar"
	_ "github.com/janpfeifer/amphipodGo/internal/searchers/bnb"
)
