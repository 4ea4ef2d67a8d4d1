package formula

import "sort"

// Not negates f. If f is a literal, the result is its LiteralNegation
// (folding a negated constant back into the opposite constant, and
// collapsing a double literal negation); otherwise the result is a
// FormulaNegation, collapsing a double formula negation the same way.
func Not(f Formula) Formula {
	switch v := f.(type) {
	case constant:
		return Const(!v.value)
	case literalNegation:
		return v.inner
	case *FormulaNegation:
		return v.inner
	}
	if lit, ok := f.(Literal); ok {
		return literalNegation{inner: lit}
	}
	return &FormulaNegation{inner: f}
}

// notLiteral is Not restricted to literals, used internally where the
// result is statically known to stay a literal.
func notLiteral(l Literal) Literal {
	return Not(l).(Literal)
}

// FormulaNegation is the structural negation of a non-literal formula.
// It is never constructed directly; use Not.
type FormulaNegation struct {
	inner Formula
}

func (n *FormulaNegation) String() string { return "~" + n.inner.String() }

func (n *FormulaNegation) Key() string { return "fneg:" + n.inner.Key() }

func (n *FormulaNegation) Hash() uint64 { return Hash64(n.Key()) }

func (n *FormulaNegation) Equal(other Formula) bool {
	return other != nil && n.Key() == other.Key()
}

func (n *FormulaNegation) TseytinTransform() (Literal, *CNF) {
	t, side := n.inner.TseytinTransform()
	s := auxLiteral("__ts_neg_", n)
	cnf := NewCNF(
		NewClause(notLiteral(s), notLiteral(t)),
		NewClause(s, t),
	)
	return s, cnf.merge(side)
}

// Implication is the structural "lhs -> rhs" node, kept explicit rather
// than eagerly rewritten so that formulas built with Implies round-trip
// through String/Equal as implications.
type Implication struct {
	lhs, rhs Formula
}

// Implies builds the structural implication lhs -> rhs.
func Implies(lhs, rhs Formula) Formula {
	return &Implication{lhs: lhs, rhs: rhs}
}

func (i *Implication) String() string {
	return "(" + i.lhs.String() + " -> " + i.rhs.String() + ")"
}

func (i *Implication) Key() string {
	return "imp:(" + i.lhs.Key() + "=>" + i.rhs.Key() + ")"
}

func (i *Implication) Hash() uint64 { return Hash64(i.Key()) }

func (i *Implication) Equal(other Formula) bool {
	return other != nil && i.Key() == other.Key()
}

func (i *Implication) TseytinTransform() (Literal, *CNF) {
	phi := Or(Not(i.lhs), i.rhs)
	return phi.TseytinTransform()
}

// Equivalence is the structural "lhs <-> rhs" node.
type Equivalence struct {
	lhs, rhs Formula
}

// Iff builds the structural equivalence lhs <-> rhs.
func Iff(lhs, rhs Formula) Formula {
	return &Equivalence{lhs: lhs, rhs: rhs}
}

func (e *Equivalence) String() string {
	return "(" + e.lhs.String() + " <-> " + e.rhs.String() + ")"
}

func (e *Equivalence) Key() string {
	keys := []string{e.lhs.Key(), e.rhs.Key()}
	sort.Strings(keys)
	return "eqv:{" + keys[0] + "|" + keys[1] + "}"
}

func (e *Equivalence) Hash() uint64 { return Hash64(e.Key()) }

func (e *Equivalence) Equal(other Formula) bool {
	return other != nil && e.Key() == other.Key()
}

func (e *Equivalence) TseytinTransform() (Literal, *CNF) {
	phi := And(Implies(e.lhs, e.rhs), Implies(e.rhs, e.lhs))
	return phi.TseytinTransform()
}
