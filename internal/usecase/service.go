// Package usecase wraps the search engines (internal/solver, behind
// ports.Solver) in a single solve facade for constraint satisfaction
// problems built with internal/domain. It exposes no builder methods of
// its own.
package usecase

import (
	"context"

	"github.com/pkg/errors"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/ports"
)

// Service exposes the two solver entry points behind a caller-supplied
// ports.Solver, so hosts can swap engines (or a test double) without
// touching call sites.
type Service struct {
	Solver ports.Solver
}

// NewService wires a Service around the given solver.
func NewService(s ports.Solver) *Service {
	return &Service{Solver: s}
}

var errNoSolver = errors.New("usecase: no solver configured")

// SolveBacktrack runs plain backtracking search over p, writing the
// solution into assignment on success.
func (u *Service) SolveBacktrack(ctx context.Context, p *domain.Problem, assignment []int, data any) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errors.Wrap(errNoSolver, "SolveBacktrack")
	}
	ok, stats := u.Solver.SolveBacktrack(ctx, p, assignment, data)
	return ok, stats, nil
}

// SolveForwardCheck runs MRV/LCV-guided forward-checking search over p,
// writing the solution into assignment on success. cancel may be nil.
func (u *Service) SolveForwardCheck(ctx context.Context, p *domain.Problem, assignment []int, data any, cancel *ports.CancelFlag) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errors.Wrap(errNoSolver, "SolveForwardCheck")
	}
	ok, stats := u.Solver.SolveForwardCheck(ctx, p, assignment, data, cancel)
	return ok, stats, nil
}
