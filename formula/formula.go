// Package formula implements an immutable algebra of propositional
// formulas together with a Tseytin transformation to Conjunctive Normal
// Form (CNF).
//
// Formulas are built through the package-level constructors (Const, Var,
// Not, Or, And, Implies, Iff, ...). Every constructor returns a fresh,
// immutable node; nodes are compared and hashed by structural content
// rather than identity, so two independently built formulas with the
// same shape are indistinguishable to callers.
package formula

import "hash/fnv"

// Formula is any propositional formula, canonical or not.
type Formula interface {
	// String renders the formula in infix-ish notation for debugging.
	String() string

	// Key returns a canonical structural representation of the formula.
	// Two formulas are Equal iff their Keys are identical.
	Key() string

	// Hash returns a structural hash derived from Key. It is stable for
	// the lifetime of a process but is not guaranteed to be stable
	// across runs or versions of this package.
	Hash() uint64

	// Equal reports whether other has the same shape as this formula,
	// ignoring the order in which set-valued children were supplied.
	Equal(other Formula) bool

	// TseytinTransform returns a literal s and a side CNF psi such that,
	// for any assignment extending the free variables of the formula to
	// the auxiliary variables introduced in psi, psi && s is satisfied
	// precisely when the original formula is. Literals answer with
	// themselves and an empty side CNF.
	TseytinTransform() (Literal, *CNF)
}

// Literal is the subset of Formula that renders to exactly one signed
// solver variable: constants, variables, their negations, and the
// integer layer's EqConstTerm.
type Literal interface {
	Formula

	// LiteralName is the solver-facing name of the underlying variable,
	// ignoring sign. EqConstTerm (in package intvar) returns
	// "<var>==<value>"; ordinary variables return the name they were
	// created with.
	LiteralName() string

	// Synthesize renders this literal through s, returning the signed
	// solver identifier (negative when the literal is negated).
	Synthesize(s Synthesizer) int
}

// ToCNF converts any formula to an equisatisfiable CNF. Clauses and CNFs
// are returned unchanged (up to promotion); literals are wrapped in a
// singleton clause; every other formula is run through Tseytin and the
// resulting root literal is conjoined onto the side CNF as a unit
// clause.
func ToCNF(f Formula) *CNF {
	switch v := f.(type) {
	case *CNF:
		return v
	case *Clause:
		return NewCNF(v)
	}
	if lit, ok := f.(Literal); ok {
		return NewCNF(NewClause(lit))
	}
	root, side := f.TseytinTransform()
	return side.withClause(NewClause(root))
}

// Hash64 computes a process-stable structural hash of s. It underlies
// Hash() for every node type in this package and is also the
// recommended way for literal/formula implementations living in other
// packages (such as intvar.EqConstTerm) to compute their own Hash.
func Hash64(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
