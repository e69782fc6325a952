package ctl

import "github.com/rfielding/ctlcheck/model"

// arena is an append-only store of computed index sets. Appending never
// invalidates a pointer handed out earlier -- growing the backing slice
// only moves the slice header, never the individually-heap-allocated
// elements it points at -- which is the stable-address guarantee the
// per-call memo needs while a Satisfies call is in flight.
type arena struct {
	sets []*model.IndexSet
}

func (a *arena) alloc(s model.IndexSet) *model.IndexSet {
	a.sets = append(a.sets, &s)
	return a.sets[len(a.sets)-1]
}

// solverRun holds the state of one Satisfies call: the per-call memo
// (seeded from the solver's persistent cache) and the arena backing it.
type solverRun struct {
	memo  map[Formula]*model.IndexSet
	arena *arena
	model *model.Model
	fac   *Factory
}

func (r *solverRun) memoAlloc(f Formula, s model.IndexSet) *model.IndexSet {
	ptr := r.arena.alloc(s)
	r.memo[f] = ptr
	return ptr
}

// memoRef records that f's result is the same set already computed for
// a rewritten formula, without allocating a new arena slot.
func (r *solverRun) memoRef(f Formula, ptr *model.IndexSet) *model.IndexSet {
	r.memo[f] = ptr
	return ptr
}

func (r *solverRun) solve(f Formula) *model.IndexSet {
	if cached, ok := r.memo[f]; ok {
		return cached
	}

	switch n := f.(type) {
	case topFormula:
		return r.memoAlloc(f, r.model.All())
	case botFormula:
		return r.memoAlloc(f, model.NewIndexSet())
	case AtomicFormula:
		return r.memoAlloc(f, r.model.Containing(n.Prop))

	case unaryFormula:
		switch n.op {
		case opNeg:
			inner := r.solve(n.Inner)
			return r.memoAlloc(f, r.model.Complement(*inner))
		case opEX:
			inner := r.solve(n.Inner)
			return r.memoAlloc(f, r.model.PreE(*inner))
		case opAX:
			// AX φ = ¬EX(¬φ)
			rewritten := r.fac.Intern(Neg(EX(Neg(n.Inner))))
			return r.memoRef(f, r.solve(rewritten))
		case opEF:
			// EF φ = E[⊤ U φ]
			rewritten := r.fac.Intern(EU(Top, n.Inner))
			return r.memoRef(f, r.solve(rewritten))
		case opAF:
			return r.memoAlloc(f, r.satAF(n.Inner))
		case opEG:
			// EG φ = ¬AF(¬φ)
			rewritten := r.fac.Intern(Neg(AF(Neg(n.Inner))))
			return r.memoRef(f, r.solve(rewritten))
		case opAG:
			// AG φ = ¬EF(¬φ)
			rewritten := r.fac.Intern(Neg(EF(Neg(n.Inner))))
			return r.memoRef(f, r.solve(rewritten))
		}

	case binaryFormula:
		switch n.op {
		case opAnd:
			l, rr := r.solve(n.Left), r.solve(n.Right)
			return r.memoAlloc(f, intersectIdx(*l, *rr))
		case opOr:
			l, rr := r.solve(n.Left), r.solve(n.Right)
			return r.memoAlloc(f, unionIdx(*l, *rr))
		case opImpliesR:
			rewritten := r.fac.Intern(Or(Neg(n.Left), n.Right))
			return r.memoRef(f, r.solve(rewritten))
		case opImpliesL:
			rewritten := r.fac.Intern(Or(n.Left, Neg(n.Right)))
			return r.memoRef(f, r.solve(rewritten))
		case opBiImplies:
			rewritten := r.fac.Intern(And(ImpliesR(n.Left, n.Right), ImpliesR(n.Right, n.Left)))
			return r.memoRef(f, r.solve(rewritten))
		case opEU:
			return r.memoAlloc(f, r.satEU(n.Left, n.Right))
		case opAU:
			// A[φ U ψ] is rewritten to ¬E[¬ψ U (¬φ ∧ ¬ψ)] ∨ EG(¬ψ)
			rewritten := r.fac.Intern(Or(
				Neg(EU(Neg(n.Right), And(Neg(n.Left), Neg(n.Right)))),
				EG(Neg(n.Right)),
			))
			return r.memoRef(f, r.solve(rewritten))
		}
	}

	panic("ctl: solve: unreachable formula kind")
}

// satEU computes the least fixed point for E[φ U ψ]:
// S0 = ψ-set, S(k+1) = Sk ∪ (PreE(Sk) ∩ φ-set), until stable.
func (r *solverRun) satEU(phi, psi Formula) model.IndexSet {
	a := *r.solve(phi)
	s := (*r.solve(psi)).Clone()
	for {
		next := unionIdx(intersectIdx(r.model.PreE(s), a), s)
		if next.Equal(s) {
			return next
		}
		s = next
	}
}

// satAF computes the least fixed point for AF φ:
// S0 = φ-set, S(k+1) = Sk ∪ PreA(Sk), until stable.
func (r *solverRun) satAF(phi Formula) model.IndexSet {
	s := (*r.solve(phi)).Clone()
	for {
		next := unionIdx(r.model.PreA(s), s)
		if next.Equal(s) {
			return next
		}
		s = next
	}
}

func intersectIdx(a, b model.IndexSet) model.IndexSet {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(model.IndexSet, len(small))
	for i := range small {
		if _, ok := big[i]; ok {
			out[i] = struct{}{}
		}
	}
	return out
}

func unionIdx(a, b model.IndexSet) model.IndexSet {
	out := make(model.IndexSet, len(a)+len(b))
	for i := range a {
		out[i] = struct{}{}
	}
	for i := range b {
		out[i] = struct{}{}
	}
	return out
}

// Solver owns a model and a persistent, monotonically-growing cache of
// formula -> satisfying-state-index-set, shared across Satisfies calls.
// A Solver is not safe for concurrent use; see package telemetry for a
// synchronized wrapper.
type Solver struct {
	model *model.Model
	fac   *Factory
	cache map[Formula]model.IndexSet
}

// NewSolver builds a Solver bound to m, with an empty factory and cache.
func NewSolver(m *model.Model) *Solver {
	return &Solver{
		model: m,
		fac:   NewFactory(),
		cache: make(map[Formula]model.IndexSet),
	}
}

// Satisfies evaluates f against the solver's model and returns the
// names of the states where it holds. f is interned into the solver's
// own factory first, so repeated calls with structurally-equal formulas
// hit the persistent cache.
func (s *Solver) Satisfies(f Formula) map[string]struct{} {
	f = s.fac.Intern(f)

	ar := &arena{}
	memo := make(map[Formula]*model.IndexSet, len(s.cache))
	for k, v := range s.cache {
		memo[k] = ar.alloc(v)
	}

	run := &solverRun{memo: memo, arena: ar, model: s.model, fac: s.fac}
	result := run.solve(f)

	for k, v := range memo {
		if _, existed := s.cache[k]; !existed {
			s.cache[k] = (*v).Clone()
		}
	}

	return s.model.NamesOf(*result)
}

// CacheSize returns the number of distinct formulas in the persistent
// cache -- useful for asserting monotonicity in tests.
func (s *Solver) CacheSize() int { return len(s.cache) }
