package formula

import (
	"strconv"
	"strings"
)

// eqEncodingSep is the separator intvar's EqConstTerm uses to render an
// integer variable's equality literal as "<name>==<value>".
const eqEncodingSep = "=="

// looksLikeEqEncoding reports whether name has the "<name>==<value>"
// shape EqConstTerm renders its literal names as. formula has no
// visibility into which IntVariables actually exist (intvar imports
// formula, not the reverse), so rather than tracking live instances it
// rejects the whole syntactic namespace: any Variable name of this shape
// could otherwise be mistaken for, or shadow, a real equality encoding.
func looksLikeEqEncoding(name string) bool {
	idx := strings.LastIndex(name, eqEncodingSep)
	if idx <= 0 || idx+len(eqEncodingSep) >= len(name) {
		return false
	}
	_, err := strconv.Atoi(name[idx+len(eqEncodingSep):])
	return err == nil
}

// constant is the Formula variant for the boolean constants true/false.
type constant struct {
	value bool
}

// Const builds the constant literal for value. True and False below are
// the two instances most callers need; Const exists for symmetry with
// the rest of the algebra and for code that computes the boolean at
// runtime.
func Const(value bool) Literal {
	return constant{value: value}
}

// True is the tautology literal.
var True Literal = constant{value: true}

// False is the contradiction literal.
var False Literal = constant{value: false}

func (c constant) String() string {
	if c.value {
		return "true"
	}
	return "false"
}

func (c constant) Key() string {
	if c.value {
		return "const:true"
	}
	return "const:false"
}

func (c constant) Hash() uint64 { return Hash64(c.Key()) }

func (c constant) Equal(other Formula) bool {
	return other != nil && c.Key() == other.Key()
}

func (c constant) TseytinTransform() (Literal, *CNF) {
	return c, emptyCNF()
}

func (c constant) LiteralName() string {
	return c.String()
}

func (c constant) Synthesize(s Synthesizer) int {
	id := s.SynthTrue()
	if !c.value {
		id = s.SynthNegation(id)
	}
	return id
}

// variableNode is the Formula variant for a named boolean variable.
type variableNode struct {
	name string
}

// Var creates a named boolean variable. It returns a ReservedNameError if
// name starts with the namespace Tseytin reserves for auxiliary
// variables, or has the "<name>==<value>" shape reserved for intvar's
// equality encoding.
func Var(name string) (Literal, error) {
	if strings.HasPrefix(name, auxPrefix) || looksLikeEqEncoding(name) {
		return nil, newReservedName(name)
	}
	return variableNode{name: name}, nil
}

// MustVar is Var, panicking on error. Useful for tests and for
// constructing formulas from names known at compile time.
func MustVar(name string) Literal {
	v, err := Var(name)
	if err != nil {
		panic(err)
	}
	return v
}

// newAuxVariable builds a Tseytin auxiliary variable, bypassing the
// reserved-prefix check that applies to caller-supplied names.
func newAuxVariable(name string) Literal {
	return variableNode{name: name}
}

func (v variableNode) String() string { return v.name }

func (v variableNode) Key() string { return "var:" + v.name }

func (v variableNode) Hash() uint64 { return Hash64(v.Key()) }

func (v variableNode) Equal(other Formula) bool {
	return other != nil && v.Key() == other.Key()
}

func (v variableNode) TseytinTransform() (Literal, *CNF) {
	return v, emptyCNF()
}

func (v variableNode) LiteralName() string { return v.name }

func (v variableNode) Synthesize(s Synthesizer) int {
	return s.SynthVariable(v.name)
}

// literalNegation negates a literal. Construction always goes through
// Not, which collapses double negation and folds negated constants, so
// a literalNegation is never found wrapping a constant or another
// literalNegation.
type literalNegation struct {
	inner Literal
}

func (n literalNegation) String() string { return "~" + n.inner.String() }

func (n literalNegation) Key() string { return "neg:" + n.inner.Key() }

func (n literalNegation) Hash() uint64 { return Hash64(n.Key()) }

func (n literalNegation) Equal(other Formula) bool {
	return other != nil && n.Key() == other.Key()
}

func (n literalNegation) TseytinTransform() (Literal, *CNF) {
	return n, emptyCNF()
}

func (n literalNegation) LiteralName() string { return n.inner.LiteralName() }

func (n literalNegation) Synthesize(s Synthesizer) int {
	return s.SynthNegation(n.inner.Synthesize(s))
}
