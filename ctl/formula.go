// Package ctl implements the CTL formula algebra, its hash-consing
// factory, and the fixed-point solver that evaluates a formula against a
// model.Model.
package ctl

import "fmt"

// Formula is a node in a CTL formula tree. Leaves are Top, Bot, and
// Atomic; everything else is a unary or binary operator over child
// Formulas. Once passed through a Factory, equal sub-formulas share a
// single Formula value -- comparing two interned Formulas with == is
// enough to tell whether they're the same sub-tree.
type Formula interface {
	isFormula()
	// key returns a comparable representation used by Factory's
	// canonicalization table. Two structurally-equal formulas whose
	// children are already interned produce equal keys.
	key() formulaKey
}

// formulaKey is the canonicalization key for a Formula: an operator tag
// plus up to two child Formula handles. Once children are interned,
// formulaKey is comparable with ==, which is what makes the factory's
// table a plain map.
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
	opEX
	opAX
	opEF
	opAF
	opEG
	opAG
	opEU
	opAU
)

// ---- leaves ----

type topFormula struct{}

func (topFormula) isFormula()        {}
func (topFormula) key() formulaKey   { return formulaKey{op: opTop} }
func (topFormula) String() string    { return "⊤" }

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

// ---- unary ----

type unaryFormula struct {
	op    opKind
	Inner Formula
}

func (u unaryFormula) isFormula()      {}
func (u unaryFormula) key() formulaKey { return formulaKey{op: u.op, left: u.Inner} }

func (u unaryFormula) String() string {
	names := map[opKind]string{
		opNeg: "¬", opEX: "EX ", opAX: "AX ", opEF: "EF ", opAF: "AF ", opEG: "EG ", opAG: "AG ",
	}
	return fmt.Sprintf("%s%s", names[u.op], u.Inner)
}

func Neg(f Formula) Formula { return unaryFormula{op: opNeg, Inner: f} }
func EX(f Formula) Formula  { return unaryFormula{op: opEX, Inner: f} }
func AX(f Formula) Formula  { return unaryFormula{op: opAX, Inner: f} }
func EF(f Formula) Formula  { return unaryFormula{op: opEF, Inner: f} }
func AF(f Formula) Formula  { return unaryFormula{op: opAF, Inner: f} }
func EG(f Formula) Formula  { return unaryFormula{op: opEG, Inner: f} }
func AG(f Formula) Formula  { return unaryFormula{op: opAG, Inner: f} }

// ---- binary ----

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
	case opEU:
		return fmt.Sprintf("E[%s U %s]", b.Left, b.Right)
	case opAU:
		return fmt.Sprintf("A[%s U %s]", b.Left, b.Right)
	default:
		return "?"
	}
}

func And(l, r Formula) Formula         { return binaryFormula{op: opAnd, Left: l, Right: r} }
func Or(l, r Formula) Formula          { return binaryFormula{op: opOr, Left: l, Right: r} }
func ImpliesR(l, r Formula) Formula    { return binaryFormula{op: opImpliesR, Left: l, Right: r} }
func ImpliesL(l, r Formula) Formula    { return binaryFormula{op: opImpliesL, Left: l, Right: r} }
func BiImplies(l, r Formula) Formula   { return binaryFormula{op: opBiImplies, Left: l, Right: r} }
func EU(l, r Formula) Formula          { return binaryFormula{op: opEU, Left: l, Right: r} }
func AU(l, r Formula) Formula          { return binaryFormula{op: opAU, Left: l, Right: r} }

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

// Factory canonicalizes formulas by structural equality: two formulas
// equal under Intern return the identical Formula handle, so repeated
// sub-trees share one allocation and identity comparison implies
// equality. The zero value is ready to use.
type Factory struct {
	table map[formulaKey]Formula
}

// NewFactory builds an empty Factory.
func NewFactory() *Factory {
	return &Factory{table: make(map[formulaKey]Formula)}
}

// Intern returns the canonical handle for f: children are interned
// recursively post-order, the node is rebuilt from its interned
// children, and the result is looked up (or inserted) in the factory's
// table.
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

// Memoize is a convenience for interning f with a fresh, throwaway
// Factory.
func Memoize(f Formula) Formula {
	return NewFactory().Intern(f)
}
