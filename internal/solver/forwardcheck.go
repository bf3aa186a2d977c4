package solver

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// SolveForwardCheck is the recursive driver that wires ForwardCheckContext
// and the MRV/LCV heuristics into a forward-checking search over p.
// Cancellation — via ctx.Done() or cancel.Requested() — is polled once at
// the top of every recursion frame and nowhere else.
func (e *Engine) SolveForwardCheck(ctx context.Context, p *domain.Problem, assignment []int, data any, cancel *ports.CancelFlag) (bool, ports.Stats) {
	requireInitialised()
	start := time.Now()
	nodes := 0
	cancelled := false

	fcCtx := NewForwardCheckContext(p)
	seedPreAssigned(fcCtx, assignment)

	var search func() bool
	search = func() bool {
		if ctx.Err() != nil || cancel.Requested() {
			cancelled = true
			return false
		}
		if fcCtx.AllAssigned() {
			return true
		}

		x := SelectUnassignedVariable(fcCtx)
		order := OrderValuesLCV(p, fcCtx, assignment, data, x)

		for _, u := range order {
			nodes++
			assignment[x] = u
			fcCtx.SetAssigned(x, true)

			if !fcConsistent(p, assignment, data, fcCtx) {
				fcCtx.SetAssigned(x, false)
				continue
			}

			watermark := fcCtx.Watermark()
			PruneNeighbors(p, assignment, data, fcCtx, x)

			if search() {
				return true
			}

			RestorePruned(fcCtx, watermark)
			fcCtx.SetAssigned(x, false)
		}
		return false
	}

	ok := search()
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start), Cancelled: cancelled}
	log.WithFields(log.Fields{"nodes": nodes, "solved": ok, "cancelled": cancelled}).Debug("solver: forward-check finished")
	return ok, stats
}

// fcConsistent is the assigned-flag-based consistency test the forward
// checking driver requires: a constraint is checked iff every variable in
// its scope is currently marked assigned in ctx. This differs from the
// oracle's frontier-index test (consistent, in oracle.go) because MRV
// selects variables out of natural order, and the frontier-index variant
// would wrongly skip a constraint whose higher-numbered scope variable is
// already assigned.
func fcConsistent(p *domain.Problem, assignment []int, data any, ctx *ForwardCheckContext) bool {
	for _, c := range p.Constraints() {
		if c == nil {
			continue
		}
		if scopeFullyAssigned(c, ctx) && !c.Check(assignment, data) {
			return false
		}
	}
	return true
}

// seedPreAssigned writes the surviving value into assignment for every
// variable NewForwardCheckContext already marked assigned via initial
// unary pruning. Without this, assignment keeps its zero value for a
// variable forced to some other digit, so fcConsistent checks that
// variable's own unary constraint, and every constraint linking it to a
// later assigned variable, against the wrong value.
func seedPreAssigned(ctx *ForwardCheckContext, assignment []int) {
	for x := 0; x < ctx.NumVariables(); x++ {
		if !ctx.Assigned(x) {
			continue
		}
		if v, ok := ctx.SoleLiveValue(x); ok {
			assignment[x] = v
		}
	}
}

func scopeFullyAssigned(c *domain.Constraint, ctx *ForwardCheckContext) bool {
	for _, v := range c.Scope() {
		if !ctx.Assigned(v) {
			return false
		}
	}
	return true
}
