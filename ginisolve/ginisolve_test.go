package ginisolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumip/satform/formula"
)

// TestSolveFormulaSatisfiable drives the trivial satisfiable scenario
// (a single clause with at least one literal true) through the full
// formula -> CNF -> synthesize -> assert -> solve pipeline.
func TestSolveFormulaSatisfiable(t *testing.T) {
	a := formula.MustVar("a")
	b := formula.MustVar("b")

	sat, model, err := New().SolveFormula(formula.Or(a, b))

	require.NoError(t, err)
	assert.True(t, sat)
	assert.True(t, containsAny(model, "a", "b"), "model %v should satisfy a||b", model)
}

func containsAny(model []string, names ...string) bool {
	for _, name := range names {
		for _, m := range model {
			if m == name {
				return true
			}
		}
	}
	return false
}

// TestSolveFormulaUnsatisfiable drives the trivial unsatisfiable scenario
// (a variable conjoined with its own negation) through the same pipeline.
func TestSolveFormulaUnsatisfiable(t *testing.T) {
	a := formula.MustVar("a")

	sat, model, err := New().SolveFormula(formula.And(a, formula.Not(a)))

	require.NoError(t, err)
	assert.False(t, sat)
	assert.Nil(t, model)
}

// TestSolveRespectsAssumptions checks that an assumption fixing a
// variable false rules out the branch of Or(a, b) that would otherwise
// be picked, forcing the other disjunct true.
func TestSolveRespectsAssumptions(t *testing.T) {
	a := formula.MustVar("a")
	b := formula.MustVar("b")

	s := New()
	synth := s.Synthesizer()
	clauses := formula.ToCNF(formula.Or(a, b)).Synthesize(synth)
	s.Assert(clauses)

	notA := formula.Not(a).(formula.Literal)
	assumptions := synth.Assumptions([]formula.Literal{notA})

	sat, model, err := s.Solve(assumptions)

	require.NoError(t, err)
	require.True(t, sat)
	assert.Contains(t, model, "b")
	assert.NotContains(t, model, "a")
}
