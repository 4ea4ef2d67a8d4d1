// Package intvar layers bounded integer variables on top of package
// formula. An IntVariable is encoded as a one-hot set of boolean
// EqConstTerm literals over its domain; EqVarTerm lets two integer
// variables be compared for equality without the caller ever touching
// the underlying encoding.
package intvar

import (
	"fmt"

	"github.com/lumip/satform/formula"
)

// IntVariable is an integer-valued variable ranging over the closed
// interval [Min, Max], backed by one boolean formula variable per value
// in that range.
type IntVariable struct {
	name     string
	min, max int
}

// New creates an integer variable named name ranging over [min, max].
// It returns an error if max is smaller than min, since that domain
// cannot be satisfied.
func New(name string, min, max int) (*IntVariable, error) {
	if max < min {
		return nil, fmt.Errorf("intvar: invalid domain for %q: max %d is smaller than min %d", name, max, min)
	}
	return &IntVariable{name: name, min: min, max: max}, nil
}

// MustNew is New, panicking on error.
func MustNew(name string, min, max int) *IntVariable {
	v, err := New(name, min, max)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *IntVariable) Name() string { return v.name }
func (v *IntVariable) Min() int     { return v.min }
func (v *IntVariable) Max() int     { return v.max }

func (v *IntVariable) String() string { return v.name }

// Eq returns the literal asserting that v currently equals val. val
// need not lie within v's domain; an out-of-domain EqConstTerm never
// appears in v's Specification, so the Specification places no
// constraint on it.
func (v *IntVariable) Eq(val int) *EqConstTerm {
	return &EqConstTerm{variable: v, value: val}
}

// EqVar returns the formula asserting that v and other currently hold
// the same value.
func (v *IntVariable) EqVar(other *IntVariable) *EqVarTerm {
	return &EqVarTerm{lhs: v, rhs: other}
}

// Domain returns every EqConstTerm literal over v's range, in
// ascending order of value.
func (v *IntVariable) Domain() []*EqConstTerm {
	out := make([]*EqConstTerm, 0, v.max-v.min+1)
	for c := v.min; c <= v.max; c++ {
		out = append(out, v.Eq(c))
	}
	return out
}

// Specification returns the "exactly one" encoding that constrains v to
// hold precisely one value from its domain: one clause requiring at
// least one EqConstTerm to hold, plus a pairwise-exclusion clause for
// every pair of distinct values ruling out more than one holding at
// once.
func (v *IntVariable) Specification() *formula.CNF {
	domain := v.Domain()

	lits := make([]formula.Literal, len(domain))
	for i, d := range domain {
		lits[i] = d
	}
	clauses := []*formula.Clause{formula.NewClause(lits...)}

	for i := range lits {
		for j := i + 1; j < len(lits); j++ {
			notI := formula.Not(lits[i]).(formula.Literal)
			notJ := formula.Not(lits[j]).(formula.Literal)
			clauses = append(clauses, formula.NewClause(notI, notJ))
		}
	}

	return formula.NewCNF(clauses...)
}
