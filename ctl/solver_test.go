package ctl

import (
	"testing"

	"github.com/rfielding/ctlcheck/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ss ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		out[s] = struct{}{}
	}
	return out
}

// Scenario A -- two-state loop.
func TestScenarioTwoStateLoop(t *testing.T) {
	m, err := model.New(
		[]model.State{model.NewState("s0", "p"), model.NewState("s1", "q")},
		map[string][]string{"s0": {"s1"}, "s1": {"s0"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)
	p, q := NewAtomic("p"), NewAtomic("q")

	assert.Equal(t, names("s0", "s1"), s.Satisfies(AG(Or(p, q))))
	assert.Equal(t, names("s0", "s1"), s.Satisfies(EF(p)))
	assert.Equal(t, names(), s.Satisfies(EG(p)))
}

// Scenario B -- deadlock.
func TestScenarioDeadlock(t *testing.T) {
	m, err := model.New(
		[]model.State{model.NewState("a", "x"), model.NewState("b")},
		map[string][]string{"a": {"b"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)

	assert.Equal(t, names("a"), s.Satisfies(EX(Top)))
	assert.Equal(t, names("b"), s.Satisfies(AX(Bot)))
	// b has no successors, so PreA puts it in AF x vacuously.
	assert.Equal(t, names("a", "b"), s.Satisfies(AF(NewAtomic("x"))))
}

// Scenario C -- until.
func TestScenarioUntil(t *testing.T) {
	m, err := model.New(
		[]model.State{
			model.NewState("s0", "p"),
			model.NewState("s1", "p"),
			model.NewState("s2", "q"),
			model.NewState("s3"),
		},
		map[string][]string{"s0": {"s1"}, "s1": {"s2"}, "s2": {"s3"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)
	p, q := NewAtomic("p"), NewAtomic("q")

	assert.Equal(t, names("s0", "s1", "s2"), s.Satisfies(EU(p, q)))
}

// Scenario E -- factory sharing under the solver's own factory.
func TestScenarioFactorySharing(t *testing.T) {
	m, err := model.New([]model.State{model.NewState("s0", "p")}, nil)
	require.NoError(t, err)

	s := NewSolver(m)
	p := NewAtomic("p")

	s.Satisfies(And(p, p))
	assert.Equal(t, 2, s.CacheSize(), "And(p,p) and p itself are both cached")
}

func TestSolverMonotonicCache(t *testing.T) {
	m, err := model.New(
		[]model.State{model.NewState("s0", "p"), model.NewState("s1")},
		map[string][]string{"s0": {"s1"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)
	before := s.CacheSize()
	s.Satisfies(EF(NewAtomic("p")))
	afterFirst := s.CacheSize()
	assert.GreaterOrEqual(t, afterFirst, before)

	s.Satisfies(EF(NewAtomic("p")))
	afterSecond := s.CacheSize()
	assert.GreaterOrEqual(t, afterSecond, afterFirst)
}

func TestSemanticRoundTrips(t *testing.T) {
	m, err := model.New(
		[]model.State{
			model.NewState("s0", "p"),
			model.NewState("s1"),
			model.NewState("s2", "p", "q"),
		},
		map[string][]string{"s0": {"s1"}, "s1": {"s2"}, "s2": {"s0"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)
	p := NewAtomic("p")

	assert.Equal(t, s.Satisfies(p), s.Satisfies(Neg(Neg(p))))
	assert.Equal(t, s.Satisfies(p), s.Satisfies(And(p, p)))
	assert.Equal(t, names("s0", "s1", "s2"), s.Satisfies(Or(p, Neg(p))))
	assert.Equal(t, s.Satisfies(EF(p)), s.Satisfies(EU(Top, p)))
	assert.Equal(t, s.Satisfies(AG(p)), s.Satisfies(Neg(EF(Neg(p)))))
}

func TestFixedPointTermination(t *testing.T) {
	// A long chain forces many fixed-point iterations; this just
	// asserts the call returns (and returns the right answer) rather
	// than looping forever.
	const n = 50
	states := make([]model.State, n)
	edges := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		name := "s" + string(rune('a'+i%26)) + string(rune('0'+i/26))
		states[i] = model.NewState(name)
	}
	for i := 0; i < n-1; i++ {
		edges[states[i].Name] = []string{states[i+1].Name}
	}
	states[n-1].Label = model.NewLabel("goal")

	m, err := model.New(states, edges)
	require.NoError(t, err)

	s := NewSolver(m)
	result := s.Satisfies(EF(NewAtomic("goal")))
	assert.Len(t, result, n, "every state can reach the goal along the chain")
}

func TestTrafficLightLikeLiveness(t *testing.T) {
	m, err := model.New(
		[]model.State{
			model.NewState("red", "stop"),
			model.NewState("green", "go"),
			model.NewState("yellow", "caution"),
		},
		map[string][]string{"red": {"green"}, "green": {"yellow"}, "yellow": {"red"}},
	)
	require.NoError(t, err)

	s := NewSolver(m)

	all := names("red", "green", "yellow")
	assert.Equal(t, all, s.Satisfies(EF(NewAtomic("go"))))
	assert.Equal(t, all, s.Satisfies(AF(NewAtomic("stop"))))
	assert.NotEqual(t, all, s.Satisfies(AG(NewAtomic("caution"))))
}

func TestMutualExclusion(t *testing.T) {
	m, err := model.New(
		[]model.State{
			model.NewState("n1n2"),
			model.NewState("t1n2"),
			model.NewState("c1n2", "critical1"),
			model.NewState("n1t2"),
			model.NewState("n1c2", "critical2"),
			model.NewState("t1t2"),
			model.NewState("c1t2", "critical1"),
			model.NewState("t1c2", "critical2"),
		},
		map[string][]string{
			"n1n2": {"t1n2", "n1t2"},
			"t1n2": {"c1n2", "t1t2"},
			"n1t2": {"t1t2", "n1c2"},
			"c1n2": {"n1n2"},
			"n1c2": {"n1n2"},
			"t1t2": {"c1t2", "t1c2"},
			"c1t2": {"n1t2"},
			"t1c2": {"t1n2"},
		},
	)
	require.NoError(t, err)

	s := NewSolver(m)
	c1, c2 := NewAtomic("critical1"), NewAtomic("critical2")
	notBothCritical := AG(Neg(And(c1, c2)))

	result := s.Satisfies(notBothCritical)
	assert.Len(t, result, 8, "mutual exclusion holds in every state")
}
