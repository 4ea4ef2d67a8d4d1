package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrPromotesToClause(t *testing.T) {
	a := MustVar("a")
	b := MustVar("b")
	c := MustVar("c")

	got := Or(a, b, c)

	clause, ok := got.(*Clause)
	require.True(t, ok, "Or of three literals should promote to a Clause, got %T", got)
	assert.Len(t, clause.Literals(), 3)
}

func TestAndPromotesToCNF(t *testing.T) {
	a := MustVar("a")
	b := MustVar("b")
	c := MustVar("c")
	d := MustVar("d")

	got := And(NewClause(a, b), NewClause(c, d))

	cnf, ok := got.(*CNF)
	require.True(t, ok, "And of two clauses should promote to a CNF, got %T", got)
	assert.Len(t, cnf.Clauses(), 2)
}

func TestAndOfLiteralsPromotesToCNFOfUnitClauses(t *testing.T) {
	a := MustVar("a")
	b := MustVar("b")

	got := And(a, b)

	cnf, ok := got.(*CNF)
	require.True(t, ok, "And of two literals should promote to a CNF, got %T", got)
	require.Len(t, cnf.Clauses(), 2)
	for _, clause := range cnf.Clauses() {
		assert.Len(t, clause.Literals(), 1)
	}
}

func TestAndOfCNFAndLiteralPromotesToCNF(t *testing.T) {
	a, b, c := MustVar("a"), MustVar("b"), MustVar("c")
	cnf := And(NewClause(a, b), NewClause(b, c)).(*CNF)

	got := And(cnf, c)

	result, ok := got.(*CNF)
	require.True(t, ok, "And of a CNF and a literal should promote to a CNF, got %T", got)
	assert.Len(t, result.Clauses(), 3)
}

func TestOrFlattensNestedDisjunctions(t *testing.T) {
	a := MustVar("a")
	b := MustVar("b")
	c := MustVar("c")

	nested := Or(And(a, b), c)
	flattened := Or(nested, MustVar("d"))

	// Or(Or(x, c), d) should merge into a single 3-child disjunction, not
	// a disjunction nested inside another.
	disj, ok := flattened.(*Disjunction)
	require.True(t, ok, "expected a flattened Disjunction, got %T", flattened)
	assert.Len(t, disj.children, 3)
}

func TestOrEmptyIsFalse(t *testing.T) {
	assert.True(t, Or().Equal(False))
}

func TestAndEmptyIsTrue(t *testing.T) {
	assert.True(t, And().Equal(True))
}

func TestNotCollapsesDoubleNegation(t *testing.T) {
	a := MustVar("a")
	assert.True(t, Not(Not(a)).Equal(a))
}

func TestNotFoldsConstant(t *testing.T) {
	assert.True(t, Not(True).Equal(False))
	assert.True(t, Not(False).Equal(True))
}

func TestNotOfNonLiteralIsFormulaNegation(t *testing.T) {
	conj := And(MustVar("a"), MustVar("b"), MustVar("c"))
	got := Not(conj)

	neg, ok := got.(*FormulaNegation)
	require.True(t, ok, "expected a FormulaNegation, got %T", got)
	assert.True(t, Not(neg).Equal(conj))
}

func TestClauseDeduplicatesRegardlessOfOrder(t *testing.T) {
	a, b := MustVar("a"), MustVar("b")
	left := NewClause(a, b)
	right := NewClause(b, a)

	assert.True(t, left.Equal(right))
	assert.Equal(t, left.Key(), right.Key())
}

func TestEquivalenceIsSymmetric(t *testing.T) {
	a, b := MustVar("a"), MustVar("b")
	assert.True(t, Iff(a, b).(*Equivalence).Equal(Iff(b, a)))
}

func TestImplicationIsAsymmetric(t *testing.T) {
	a, b := MustVar("a"), MustVar("b")
	assert.False(t, Implies(a, b).(*Implication).Equal(Implies(b, a)))
}

func TestVarRejectsReservedPrefix(t *testing.T) {
	_, err := Var("__ts_sneaky")
	require.Error(t, err)
	var reserved *ReservedNameError
	assert.ErrorAs(t, err, &reserved)
}

func TestVarRejectsEqEncodingShape(t *testing.T) {
	_, err := Var("cell_0_0==5")
	require.Error(t, err)
	var reserved *ReservedNameError
	assert.ErrorAs(t, err, &reserved)
}

func TestVarAcceptsNamesWithoutEqEncodingShape(t *testing.T) {
	_, err := Var("a==b")
	assert.NoError(t, err, "suffix after == must be numeric to be reserved")

	_, err = Var("score")
	assert.NoError(t, err)
}

// evalFormula evaluates f under a single assignment of names to
// true/false, reporting whether f holds. It treats the handful of Formula variants exercised in these
// tests directly, rather than going through Tseytin/solving, so that
// TestTseytinPreservesSatisfiability has an independent oracle.
func evalFormula(f Formula, assign map[string]bool) bool {
	switch v := f.(type) {
	case constant:
		return v.value
	case variableNode:
		return assign[v.name]
	case literalNegation:
		return !evalFormula(v.inner, assign)
	case *Clause:
		for _, l := range v.lits {
			if evalFormula(l, assign) {
				return true
			}
		}
		return false
	case *CNF:
		for _, c := range v.clauses {
			if !evalFormula(c, assign) {
				return false
			}
		}
		return true
	case *Disjunction:
		for _, c := range v.children {
			if evalFormula(c, assign) {
				return true
			}
		}
		return false
	case *Conjunction:
		for _, c := range v.children {
			if !evalFormula(c, assign) {
				return false
			}
		}
		return true
	case *FormulaNegation:
		return !evalFormula(v.inner, assign)
	case *Implication:
		return !evalFormula(v.lhs, assign) || evalFormula(v.rhs, assign)
	case *Equivalence:
		return evalFormula(v.lhs, assign) == evalFormula(v.rhs, assign)
	}
	panic("evalFormula: unhandled formula type")
}

func allAssignments(names []string) []map[string]bool {
	if len(names) == 0 {
		return []map[string]bool{{}}
	}
	rest := allAssignments(names[1:])
	out := make([]map[string]bool, 0, 2*len(rest))
	for _, value := range []bool{false, true} {
		for _, r := range rest {
			a := map[string]bool{names[0]: value}
			for k, v := range r {
				a[k] = v
			}
			out = append(out, a)
		}
	}
	return out
}

// TestTseytinPreservesSatisfiability checks the defining property of
// the Tseytin transformation: for a handful of structurally varied
// formulas, the transformed CNF is satisfiable under exactly the same
// original-variable assignments as the source formula (auxiliary
// variables free to take whichever value makes the side constraints
// hold).
func TestTseytinPreservesSatisfiability(t *testing.T) {
	a, b, c := MustVar("a"), MustVar("b"), MustVar("c")

	cases := map[string]Formula{
		"clause":      Or(a, b, c),
		"conjunction": And(a, b, c),
		"nested":      Or(And(a, b), And(Not(a), c)),
		"implication": Implies(a, b),
		"equivalence": Iff(a, b),
		"negation":    Not(And(a, b)),
	}

	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			cnf := ToCNF(f)
			names := []string{"a", "b", "c"}
			for _, assign := range allAssignments(names) {
				want := evalFormula(f, assign)
				got := cnfSatisfiable(t, cnf, assign)
				assert.Equal(t, want, got, "assignment %v", assign)
			}
		})
	}
}

func TestDefaultSynthesizerAllocatesDenseIdsStartingAtTwo(t *testing.T) {
	s := NewDefaultSynthesizer()

	a := s.SynthVariable("a")
	b := s.SynthVariable("b")

	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)
	assert.NotEqual(t, trueID, a)
	assert.NotEqual(t, trueID, b)
}

func TestDefaultSynthesizerMemoizesVariableIDs(t *testing.T) {
	s := NewDefaultSynthesizer()

	first := s.SynthVariable("a")
	second := s.SynthVariable("a")

	assert.Equal(t, first, second)
}

func TestDefaultSynthesizerTranslateRoundTrips(t *testing.T) {
	a, b := MustVar("a"), MustVar("b")
	s := NewDefaultSynthesizer()

	idA := a.Synthesize(s)
	idB := NewClause(Not(b).(Literal)).Synthesize(s)[0]

	got := s.Translate([]int{idA, idB})
	assert.ElementsMatch(t, []string{"a", "-b"}, got)
}

func TestDefaultSynthesizerTranslateDropsTrueID(t *testing.T) {
	s := NewDefaultSynthesizer()
	a := s.SynthVariable("a")

	got := s.Translate([]int{trueID, -trueID, a})
	assert.Equal(t, []string{"a"}, got)
}

func TestDefaultSynthesizerTranslateDropsUnknownIDs(t *testing.T) {
	s := NewDefaultSynthesizer()
	a := s.SynthVariable("a")

	got := s.Translate([]int{a, 999})
	assert.Equal(t, []string{"a"}, got)
}

func TestDefaultSynthesizerAssumptionsLeadsWithTrueID(t *testing.T) {
	s := NewDefaultSynthesizer()
	a := MustVar("a")

	got := s.Assumptions([]Literal{a})

	require.Len(t, got, 2)
	assert.Equal(t, trueID, got[0])
	assert.Equal(t, s.SynthVariable("a"), got[1])
}

func TestDefaultSynthesizerAssumptionsWithNoLiteralsIsJustTrueID(t *testing.T) {
	s := NewDefaultSynthesizer()
	assert.Equal(t, []int{trueID}, s.Assumptions(nil))
}

// cnfSatisfiable brute-forces every extension of assign over cnf's
// auxiliary variables, reporting whether any extension satisfies it.
func cnfSatisfiable(t *testing.T, cnf *CNF, assign map[string]bool) bool {
	t.Helper()

	aux := map[string]bool{}
	for _, c := range cnf.Clauses() {
		for _, l := range c.Literals() {
			name := l.LiteralName()
			if _, known := assign[name]; !known {
				aux[name] = false
			}
		}
	}
	auxNames := make([]string, 0, len(aux))
	for name := range aux {
		auxNames = append(auxNames, name)
	}

	for _, auxAssign := range allAssignments(auxNames) {
		full := map[string]bool{}
		for k, v := range assign {
			full[k] = v
		}
		for k, v := range auxAssign {
			full[k] = v
		}
		if evalFormula(cnf, full) {
			return true
		}
	}
	return false
}
