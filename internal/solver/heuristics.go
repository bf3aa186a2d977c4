package solver

import (
	"sort"

	"svw.info/csp/internal/domain"
)

// SelectUnassignedVariable is the MRV ("minimum remaining values")
// heuristic: it returns the unassigned variable with the fewest live
// values, breaking ties toward the lowest identifier by only replacing the
// current best on a strict improvement while scanning in ascending order.
// Its behavior is undefined — here, it returns -1 — if every variable is
// already assigned; the forward-checking driver never calls it in that
// state.
func SelectUnassignedVariable(ctx *ForwardCheckContext) int {
	best, bestCount := -1, 0
	for i := 0; i < ctx.NumVariables(); i++ {
		if ctx.Assigned(i) {
			continue
		}
		count := ctx.LiveCount(i)
		if best == -1 || count < bestCount {
			best, bestCount = i, count
		}
	}
	return best
}

// valueConflicts pairs a candidate value for some variable with the LCV
// conflict score computed for it.
type valueConflicts struct {
	value     int
	conflicts int
}

// OrderValuesLCV is the LCV ("least constraining value") heuristic: it
// returns variable's live values ordered ascending by how many candidate
// values they would rule out across variable's unassigned binary
// neighbors. Only arity-2 constraints contribute to the score. Ties are
// broken by ascending value identifier via a stable sort.
//
// OrderValuesLCV temporarily overwrites assignment[variable] and
// assignment[other] while scoring each candidate, but leaves no trace in
// ctx's live masks or assigned flags.
func OrderValuesLCV(p *domain.Problem, ctx *ForwardCheckContext, assignment []int, data any, variable int) []int {
	dsize := ctx.DomainSize(variable)
	candidates := make([]valueConflicts, 0, dsize)

	for u := 0; u < dsize; u++ {
		if !ctx.IsLive(variable, u) {
			continue
		}
		assignment[variable] = u
		candidates = append(candidates, valueConflicts{value: u, conflicts: conflictScore(p, ctx, assignment, data, variable)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].conflicts < candidates[j].conflicts
	})

	ordered := make([]int, len(candidates))
	for i, cand := range candidates {
		ordered[i] = cand.value
	}
	return ordered
}

// conflictScore counts, over every binary constraint {variable, other}
// with other unassigned, how many of other's live values would be ruled
// out by the value currently held in assignment[variable].
func conflictScore(p *domain.Problem, ctx *ForwardCheckContext, assignment []int, data any, variable int) int {
	conflicts := 0
	for _, c := range p.Constraints() {
		if c == nil || c.Arity() != 2 {
			continue
		}
		other, ok := binaryNeighbor(c, variable)
		if !ok || ctx.Assigned(other) {
			continue
		}
		for w := 0; w < ctx.DomainSize(other); w++ {
			if !ctx.IsLive(other, w) {
				continue
			}
			assignment[other] = w
			if !c.Check(assignment, data) {
				conflicts++
			}
		}
	}
	return conflicts
}
