package intvar

import (
	"fmt"
	"sort"

	"github.com/lumip/satform/formula"
)

// EqVarTerm is the formula "lhs == rhs" between two integer variables.
// Unlike EqConstTerm it is not a single solver literal: it expands, via
// TseytinTransform, into a disjunction over every value the two
// variables' domains have in common. A pair of variables with disjoint
// domains therefore produces an empty disjunction, i.e. the contradiction
// literal False, so the comparison is unsatisfiable as expected.
type EqVarTerm struct {
	lhs, rhs *IntVariable
}

func (e *EqVarTerm) Lhs() *IntVariable { return e.lhs }
func (e *EqVarTerm) Rhs() *IntVariable { return e.rhs }

func (e *EqVarTerm) String() string {
	return fmt.Sprintf("%s==%s", e.lhs.name, e.rhs.name)
}

func (e *EqVarTerm) Key() string {
	names := []string{e.lhs.name, e.rhs.name}
	sort.Strings(names)
	return fmt.Sprintf("eqvar:{%s|%s}", names[0], names[1])
}

func (e *EqVarTerm) Hash() uint64 { return formula.Hash64(e.Key()) }

func (e *EqVarTerm) Equal(other formula.Formula) bool {
	return other != nil && e.Key() == other.Key()
}

func (e *EqVarTerm) TseytinTransform() (formula.Literal, *formula.CNF) {
	lo := e.lhs.min
	if e.rhs.min > lo {
		lo = e.rhs.min
	}
	hi := e.lhs.max
	if e.rhs.max < hi {
		hi = e.rhs.max
	}

	terms := make([]formula.Formula, 0)
	for c := lo; c <= hi; c++ {
		terms = append(terms, formula.And(e.lhs.Eq(c), e.rhs.Eq(c)))
	}

	return formula.Or(terms...).TseytinTransform()
}
