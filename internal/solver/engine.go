// Package solver implements the search engines: plain chronological
// backtracking (no pruning) and forward checking with MRV/LCV heuristics
// over a reversible per-search context. Both are exposed through Engine,
// which implements ports.Solver.
package solver

import "svw.info/csp/internal/lifecycle"

// Engine implements ports.Solver. It carries no state of its own — each
// solve call owns its own assignment snapshot and, for forward checking,
// its own *ForwardCheckContext — so a single Engine value may be shared
// across concurrent searches provided they do not share a Problem that is
// being mutated concurrently.
type Engine struct{}

// NewEngine returns a ready-to-use search engine.
func NewEngine() *Engine { return &Engine{} }

func requireInitialised() {
	if !lifecycle.Initialised() {
		panic("solver: library not initialised; call lifecycle.Init() first")
	}
}
