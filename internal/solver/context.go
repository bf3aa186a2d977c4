package solver

import "svw.info/csp/internal/domain"

// ForwardCheckContext holds the per-search bookkeeping forward checking
// relies on: per-variable live masks and assigned flags, plus a reversible
// prune log. It is represented as packed arrays — a flat live-value buffer
// with a per-variable offset table, and an assigned flag vector — rather
// than a slice of per-variable slices, to keep the hot path allocation-
// free. The context is owned by exactly one search; it is never shared
// across concurrent searches.
type ForwardCheckContext struct {
	domainSizes []int
	offsets     []int
	liveMask    []bool
	liveCounts  []int
	assigned    []bool
	pruneStack  []pruneEntry
}

// pruneEntry is one (variable, value) pair removed from a live mask on
// behalf of some recursion frame. The context's pruneStack is a single
// growable stack of these; callers take a watermark before pruning and
// restore back to it afterward, so no frame needs its own allocation.
type pruneEntry struct {
	variable int
	value    int
}

// NewForwardCheckContext allocates a context for p with all live masks
// initially true and all assigned flags false, then applies initial unary
// pruning: every installed unary constraint is evaluated against a
// nil-data scratch assignment, since search has not started and there is
// no caller data context yet, and any variable left with exactly one live
// value by that pass is marked assigned.
func NewForwardCheckContext(p *domain.Problem) *ForwardCheckContext {
	n := p.NumVariables()
	offsets := make([]int, n)
	domainSizes := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		domainSizes[i] = p.Domain(i)
		offsets[i] = total
		total += domainSizes[i]
	}

	ctx := &ForwardCheckContext{
		domainSizes: domainSizes,
		offsets:     offsets,
		liveMask:    make([]bool, total),
		liveCounts:  make([]int, n),
		assigned:    make([]bool, n),
	}
	for i := range ctx.liveMask {
		ctx.liveMask[i] = true
	}
	copy(ctx.liveCounts, domainSizes)

	ctx.applyInitialUnaryPruning(p)
	return ctx
}

func (ctx *ForwardCheckContext) applyInitialUnaryPruning(p *domain.Problem) {
	n := len(ctx.domainSizes)
	scratch := make([]int, n)
	touched := make([]bool, n)

	for _, c := range p.Constraints() {
		if c == nil || c.Arity() != 1 {
			continue
		}
		x := c.ScopeVariable(0)
		touched[x] = true
		for v := 0; v < ctx.domainSizes[x]; v++ {
			if !ctx.IsLive(x, v) {
				continue
			}
			scratch[x] = v
			if !c.Check(scratch, nil) {
				ctx.setLive(x, v, false)
			}
		}
	}

	for x := 0; x < n; x++ {
		if touched[x] && ctx.liveCounts[x] == 1 {
			ctx.assigned[x] = true
		}
	}
}

func (ctx *ForwardCheckContext) flatIndex(variable, value int) int {
	return ctx.offsets[variable] + value
}

// IsLive reports whether value is still a candidate for variable.
func (ctx *ForwardCheckContext) IsLive(variable, value int) bool {
	return ctx.liveMask[ctx.flatIndex(variable, value)]
}

func (ctx *ForwardCheckContext) setLive(variable, value int, live bool) {
	idx := ctx.flatIndex(variable, value)
	if ctx.liveMask[idx] == live {
		return
	}
	ctx.liveMask[idx] = live
	if live {
		ctx.liveCounts[variable]++
	} else {
		ctx.liveCounts[variable]--
	}
}

// LiveCount returns the number of live values remaining for variable.
func (ctx *ForwardCheckContext) LiveCount(variable int) int { return ctx.liveCounts[variable] }

// SoleLiveValue returns variable's one remaining live value and true, or
// (0, false) if variable does not have exactly one live value. Callers use
// this to read out the value initial unary pruning forced onto a variable
// it marked assigned, since marking the flag alone does not say which
// value survived.
func (ctx *ForwardCheckContext) SoleLiveValue(variable int) (int, bool) {
	if ctx.liveCounts[variable] != 1 {
		return 0, false
	}
	for v := 0; v < ctx.domainSizes[variable]; v++ {
		if ctx.IsLive(variable, v) {
			return v, true
		}
	}
	return 0, false
}

// Assigned reports whether variable is currently marked assigned.
func (ctx *ForwardCheckContext) Assigned(variable int) bool { return ctx.assigned[variable] }

// SetAssigned sets variable's assigned flag.
func (ctx *ForwardCheckContext) SetAssigned(variable int, assigned bool) {
	ctx.assigned[variable] = assigned
}

// AllAssigned reports whether every variable in the context is assigned.
func (ctx *ForwardCheckContext) AllAssigned() bool {
	for _, a := range ctx.assigned {
		if !a {
			return false
		}
	}
	return true
}

// NumVariables returns N.
func (ctx *ForwardCheckContext) NumVariables() int { return len(ctx.domainSizes) }

// DomainSize returns the original domain size of variable (not the live
// count — use LiveCount for that).
func (ctx *ForwardCheckContext) DomainSize(variable int) int { return ctx.domainSizes[variable] }

// Watermark returns the current length of the prune stack, to be passed to
// Restore once the frame that produced any prunes above it is done.
func (ctx *ForwardCheckContext) Watermark() int { return len(ctx.pruneStack) }

func (ctx *ForwardCheckContext) pushPrune(variable, value int) {
	ctx.pruneStack = append(ctx.pruneStack, pruneEntry{variable: variable, value: value})
}
