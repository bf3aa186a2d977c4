package solver

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// SolveBacktrack performs depth-first search with chronological
// backtracking and no pruning. Variables are tried in natural order
// 0..N-1, values ascending within each variable's domain. It does not
// honor ctx cancellation; plain backtracking is meant to be the simple,
// exhaustive baseline, not a long-running interactive search.
func (e *Engine) SolveBacktrack(ctx context.Context, p *domain.Problem, assignment []int, data any) (bool, ports.Stats) {
	requireInitialised()
	start := time.Now()
	nodes := 0

	var dfs func(index int) bool
	dfs = func(index int) bool {
		n := p.NumVariables()
		if index == n {
			return true
		}
		d := p.Domain(index)
		for v := 0; v < d; v++ {
			nodes++
			assignment[index] = v
			if consistent(p, assignment, index+1, data) && dfs(index+1) {
				return true
			}
		}
		return false
	}

	ok := dfs(0)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	log.WithFields(log.Fields{"nodes": nodes, "solved": ok}).Debug("solver: backtrack finished")
	return ok, stats
}
