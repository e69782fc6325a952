package ctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoryIdempotence(t *testing.T) {
	fac := NewFactory()

	p := NewAtomic("p")
	f1 := And(p, p)
	f2 := And(NewAtomic("p"), NewAtomic("p"))

	h1 := fac.Intern(f1)
	h2 := fac.Intern(f2)

	assert.Equal(t, h1, h2, "structurally equal formulas must intern to the same handle")

	b := h1.(binaryFormula)
	assert.Equal(t, b.Left, b.Right, "interned children of And(p,p) must be identical")
}

func TestSize(t *testing.T) {
	p := NewAtomic("p")
	q := NewAtomic("q")
	f := AU(EX(p), And(q, Neg(p)))
	// AU: 1 + EX(1+1) + And(1 + 1 + (1+1)) = 1 + 2 + 4 = 7
	assert.Equal(t, 7, Size(f))
}

func TestMemoizeSharesChildren(t *testing.T) {
	p := NewAtomic("p")
	f := Memoize(And(p, p))
	b := f.(binaryFormula)
	assert.Equal(t, b.Left, b.Right)
}
