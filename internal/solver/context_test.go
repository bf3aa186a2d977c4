package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csp/internal/domain"
	"svw.info/csp/internal/solver"
)

func TestNewForwardCheckContextStartsFullyLive(t *testing.T) {
	p := domain.NewProblem(2, 0)
	p.SetDomain(0, 3)
	p.SetDomain(1, 2)

	ctx := solver.NewForwardCheckContext(p)
	assert.Equal(t, 3, ctx.LiveCount(0))
	assert.Equal(t, 2, ctx.LiveCount(1))
	for v := 0; v < 3; v++ {
		assert.True(t, ctx.IsLive(0, v))
	}
	assert.False(t, ctx.Assigned(0))
	assert.False(t, ctx.Assigned(1))
	assert.False(t, ctx.AllAssigned())
}

func TestNewForwardCheckContextAppliesInitialUnaryPruning(t *testing.T) {
	p := domain.NewProblem(2, 1)
	p.SetDomain(0, 1)
	p.SetDomain(1, 3)
	c := domain.NewConstraint(1, forbidValue(0))
	c.SetScopeVariable(0, 0)
	p.InstallConstraint(0, c)

	ctx := solver.NewForwardCheckContext(p)
	// Variable 0's only value is forbidden, leaving zero live values —
	// "assigned by singleton" does not apply since the live count isn't 1.
	assert.False(t, ctx.IsLive(0, 0))
	assert.Equal(t, 0, ctx.LiveCount(0))
	// Variable 1 was never touched by any unary constraint, so it must not
	// be marked assigned by initial pruning regardless of its live count.
	assert.False(t, ctx.Assigned(1))
}

func TestNewForwardCheckContextMarksSingletonAfterUnaryPruning(t *testing.T) {
	p := domain.NewProblem(1, 2)
	p.SetDomain(0, 3)
	c0 := domain.NewConstraint(1, forbidValue(0))
	c0.SetScopeVariable(0, 0)
	c1 := domain.NewConstraint(1, forbidValue(1))
	c1.SetScopeVariable(0, 0)
	p.InstallConstraint(0, c0)
	p.InstallConstraint(1, c1)

	ctx := solver.NewForwardCheckContext(p)
	require.Equal(t, 1, ctx.LiveCount(0))
	assert.True(t, ctx.IsLive(0, 2))
	assert.True(t, ctx.Assigned(0))
}

func TestSetAssignedAndAllAssigned(t *testing.T) {
	p := domain.NewProblem(2, 0)
	p.SetDomain(0, 1)
	p.SetDomain(1, 1)
	ctx := solver.NewForwardCheckContext(p)

	ctx.SetAssigned(0, true)
	assert.False(t, ctx.AllAssigned())
	ctx.SetAssigned(1, true)
	assert.True(t, ctx.AllAssigned())
	ctx.SetAssigned(1, false)
	assert.False(t, ctx.AllAssigned())
}

func TestWatermarkStartsAtZero(t *testing.T) {
	p := domain.NewProblem(2, 0)
	p.SetDomain(0, 2)
	p.SetDomain(1, 2)
	ctx := solver.NewForwardCheckContext(p)
	assert.Equal(t, 0, ctx.Watermark())
}
