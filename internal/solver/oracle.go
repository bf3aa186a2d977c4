package solver

import "svw.info/csp/internal/domain"

// consistent is the consistency oracle: it reports whether every
// constraint whose scope lies entirely in [0, frontier) is satisfied by
// assignment. Constraints are walked in installation order and the scan
// stops at the first failure; a constraint with any scope variable >=
// frontier is skipped, not treated as failing, so that a partial
// assignment can be checked cheaply after each step of the plain
// backtrack.
func consistent(p *domain.Problem, assignment []int, frontier int, data any) bool {
	for _, c := range p.Constraints() {
		if c == nil {
			continue
		}
		if inScope(c, frontier) && !c.Check(assignment, data) {
			return false
		}
	}
	return true
}

// inScope reports whether every variable in c's scope is < frontier.
func inScope(c *domain.Constraint, frontier int) bool {
	for _, v := range c.Scope() {
		if v >= frontier {
			return false
		}
	}
	return true
}
