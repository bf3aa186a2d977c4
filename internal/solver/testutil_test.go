package solver_test

import "svw.info/csp/internal/domain"

// notEqual is a binary "all-different" predicate over the two scope
// variables: the constraint holds so long as the two values in assignment
// differ. It compares whatever the caller has written there; skipping the
// constraint until both variables are reached is left to the solver.
func notEqual(c *domain.Constraint, assignment []int, _ any) bool {
	a := c.ScopeVariable(0)
	b := c.ScopeVariable(1)
	return assignment[a] != assignment[b]
}

// buildAllDifferent constructs an N-variable problem, each with the given
// domain size, and a complete graph of pairwise notEqual constraints — the
// generalization of graph coloring / N-queens-style "all different" CSPs
// used across the solver test scenarios.
func buildAllDifferent(n, domainSize int) *domain.Problem {
	pairs := n * (n - 1) / 2
	p := domain.NewProblem(n, pairs)
	for i := 0; i < n; i++ {
		p.SetDomain(i, domainSize)
	}
	slot := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := domain.NewConstraint(2, notEqual)
			c.SetScopeVariable(0, i)
			c.SetScopeVariable(1, j)
			p.InstallConstraint(slot, c)
			slot++
		}
	}
	return p
}

// forbidValue is a unary predicate factory: the returned constraint rejects
// exactly the value baked into the closure (data is ignored), so callers install one instance
// per (variable, forbidden value) pair through the constraint's own scope.
func forbidValue(forbidden int) domain.Predicate {
	return func(c *domain.Constraint, assignment []int, _ any) bool {
		return assignment[c.ScopeVariable(0)] != forbidden
	}
}
