package intvar

import (
	"fmt"

	"github.com/lumip/satform/formula"
)

// EqConstTerm is the literal "variable == value". It implements
// formula.Literal directly: it is already a single signed solver
// variable, named "<variable>==<value>", so Tseytin treats it exactly
// like an ordinary formula.Variable.
type EqConstTerm struct {
	variable *IntVariable
	value    int
}

func (e *EqConstTerm) Variable() *IntVariable { return e.variable }
func (e *EqConstTerm) Value() int             { return e.value }

func (e *EqConstTerm) String() string {
	return fmt.Sprintf("%s==%d", e.variable.name, e.value)
}

func (e *EqConstTerm) Key() string {
	return fmt.Sprintf("eqconst:%s==%d", e.variable.name, e.value)
}

func (e *EqConstTerm) Hash() uint64 { return formula.Hash64(e.Key()) }

func (e *EqConstTerm) Equal(other formula.Formula) bool {
	return other != nil && e.Key() == other.Key()
}

func (e *EqConstTerm) TseytinTransform() (formula.Literal, *formula.CNF) {
	return e, formula.NewCNF()
}

func (e *EqConstTerm) LiteralName() string { return e.String() }

func (e *EqConstTerm) Synthesize(s formula.Synthesizer) int {
	return s.SynthVariable(e.LiteralName())
}
