// Package ltl mirrors package ctl's data-model/factory pattern for LTL
// (Linear Temporal Logic) formulas. It is a parallel instance of the
// same representation with LTL's own operator set -- there is no LTL
// solver here, matching the source this was distilled from, which
// treats LTL as "a near-clone of CTL... not independently specified."
package ltl

import "fmt"

// Formula is a node in an LTL formula tree: Top, Bot, and Atomic leaves,
// the shared boolean connectives, and the linear-time operators X, F,
// G, U (until), W (weak until), R (release).
type Formula interface {
	isFormula()
	key() formulaKey
}

type formulaKey struct {
	op          opKind
	prop        string
	left, right Formula
}

type opKind uint8

const (
	opTop opKind = iota
	opBot
	opAtomic
	opNeg
	opAnd
	opOr
	opImpliesR
	opImpliesL
	opBiImplies
	opX
	opF
	opG
	opU
	opW
	opR
)

type topFormula struct{}

func (topFormula) isFormula()      {}
func (topFormula) key() formulaKey { return formulaKey{op: opTop} }
func (topFormula) String() string  { return "⊤" }

// Top is the boolean constant true.
var Top Formula = topFormula{}

type botFormula struct{}

func (botFormula) isFormula()      {}
func (botFormula) key() formulaKey { return formulaKey{op: opBot} }
func (botFormula) String() string  { return "⊥" }

// Bot is the boolean constant false.
var Bot Formula = botFormula{}

// AtomicFormula is an atomic proposition leaf.
type AtomicFormula struct{ Prop string }

// NewAtomic builds an atomic-proposition formula.
func NewAtomic(prop string) Formula { return AtomicFormula{Prop: prop} }

func (a AtomicFormula) isFormula()      {}
func (a AtomicFormula) key() formulaKey { return formulaKey{op: opAtomic, prop: a.Prop} }
func (a AtomicFormula) String() string  { return a.Prop }

type unaryFormula struct {
	op    opKind
	Inner Formula
}

func (u unaryFormula) isFormula()      {}
func (u unaryFormula) key() formulaKey { return formulaKey{op: u.op, left: u.Inner} }

func (u unaryFormula) String() string {
	names := map[opKind]string{opNeg: "¬", opX: "X ", opF: "F ", opG: "G "}
	return fmt.Sprintf("%s%s", names[u.op], u.Inner)
}

func Neg(f Formula) Formula { return unaryFormula{op: opNeg, Inner: f} }
func X(f Formula) Formula   { return unaryFormula{op: opX, Inner: f} }
func F(f Formula) Formula   { return unaryFormula{op: opF, Inner: f} }
func G(f Formula) Formula   { return unaryFormula{op: opG, Inner: f} }

type binaryFormula struct {
	op          opKind
	Left, Right Formula
}

func (b binaryFormula) isFormula() {}
func (b binaryFormula) key() formulaKey {
	return formulaKey{op: b.op, left: b.Left, right: b.Right}
}

func (b binaryFormula) String() string {
	switch b.op {
	case opAnd:
		return fmt.Sprintf("(%s ∧ %s)", b.Left, b.Right)
	case opOr:
		return fmt.Sprintf("(%s ∨ %s)", b.Left, b.Right)
	case opImpliesR:
		return fmt.Sprintf("(%s → %s)", b.Left, b.Right)
	case opImpliesL:
		return fmt.Sprintf("(%s ← %s)", b.Left, b.Right)
	case opBiImplies:
		return fmt.Sprintf("(%s ↔ %s)", b.Left, b.Right)
	case opU:
		return fmt.Sprintf("(%s U %s)", b.Left, b.Right)
	case opW:
		return fmt.Sprintf("(%s W %s)", b.Left, b.Right)
	case opR:
		return fmt.Sprintf("(%s R %s)", b.Left, b.Right)
	default:
		return "?"
	}
}

func And(l, r Formula) Formula       { return binaryFormula{op: opAnd, Left: l, Right: r} }
func Or(l, r Formula) Formula        { return binaryFormula{op: opOr, Left: l, Right: r} }
func ImpliesR(l, r Formula) Formula  { return binaryFormula{op: opImpliesR, Left: l, Right: r} }
func ImpliesL(l, r Formula) Formula  { return binaryFormula{op: opImpliesL, Left: l, Right: r} }
func BiImplies(l, r Formula) Formula { return binaryFormula{op: opBiImplies, Left: l, Right: r} }
func Until(l, r Formula) Formula     { return binaryFormula{op: opU, Left: l, Right: r} }
func WeakUntil(l, r Formula) Formula { return binaryFormula{op: opW, Left: l, Right: r} }
func Release(l, r Formula) Formula   { return binaryFormula{op: opR, Left: l, Right: r} }

// Size returns the number of nodes in the (unshared) formula tree.
func Size(f Formula) int {
	switch n := f.(type) {
	case topFormula, botFormula, AtomicFormula:
		return 1
	case unaryFormula:
		return 1 + Size(n.Inner)
	case binaryFormula:
		return 1 + Size(n.Left) + Size(n.Right)
	default:
		return 0
	}
}

// Factory canonicalizes LTL formulas exactly as ctl.Factory does for
// CTL formulas. The zero value is ready to use.
type Factory struct {
	table map[formulaKey]Formula
}

// NewFactory builds an empty Factory.
func NewFactory() *Factory {
	return &Factory{table: make(map[formulaKey]Formula)}
}

// Intern returns the canonical handle for f.
func (fac *Factory) Intern(f Formula) Formula {
	if fac.table == nil {
		fac.table = make(map[formulaKey]Formula)
	}
	switch n := f.(type) {
	case topFormula, botFormula, AtomicFormula:
		return fac.lookup(n)
	case unaryFormula:
		n.Inner = fac.Intern(n.Inner)
		return fac.lookup(n)
	case binaryFormula:
		n.Left = fac.Intern(n.Left)
		n.Right = fac.Intern(n.Right)
		return fac.lookup(n)
	default:
		return f
	}
}

func (fac *Factory) lookup(f Formula) Formula {
	k := f.key()
	if existing, ok := fac.table[k]; ok {
		return existing
	}
	fac.table[k] = f
	return f
}

// Size returns how many distinct formulas this factory has interned.
func (fac *Factory) Size() int { return len(fac.table) }

// Memoize interns f with a fresh, throwaway Factory.
func Memoize(f Formula) Formula {
	return NewFactory().Intern(f)
}
