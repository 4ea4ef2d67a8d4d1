package formula

import (
	"sort"
	"strings"
)

// sortedKeys returns the Key() of every formula in fs, sorted so that
// set-valued nodes hash and compare independently of insertion order.
func sortedKeys(fs map[string]Formula) []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func canonicalKey(tag string, keys []string) string {
	return tag + ":[" + strings.Join(keys, "|") + "]"
}

// Clause is a disjunction of literals. It is one of the two "canonical"
// container nodes (the other being CNF): its children are always
// literals, deduplicated as a set.
type Clause struct {
	lits map[string]Literal
}

// NewClause builds a clause from the given literals, deduplicating by
// structural equality. A clause with no literals is the unsatisfiable
// "false" clause.
func NewClause(lits ...Literal) *Clause {
	m := make(map[string]Literal, len(lits))
	for _, l := range lits {
		m[l.Key()] = l
	}
	return &Clause{lits: m}
}

// Literals returns the clause's literals in no particular order.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, 0, len(c.lits))
	for _, l := range c.lits {
		out = append(out, l)
	}
	return out
}

func (c *Clause) formulaChildren() map[string]Formula {
	out := make(map[string]Formula, len(c.lits))
	for k, l := range c.lits {
		out[k] = l
	}
	return out
}

func (c *Clause) String() string {
	parts := make([]string, 0, len(c.lits))
	for _, k := range sortedKeys(c.formulaChildren()) {
		parts = append(parts, c.lits[k].String())
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

func (c *Clause) Key() string { return canonicalKey("clause", sortedKeys(c.formulaChildren())) }

func (c *Clause) Hash() uint64 { return Hash64(c.Key()) }

func (c *Clause) Equal(other Formula) bool {
	return other != nil && c.Key() == other.Key()
}

func (c *Clause) TseytinTransform() (Literal, *CNF) {
	subs := make([]Formula, 0, len(c.lits))
	for _, l := range c.lits {
		subs = append(subs, l)
	}
	return tseytinOr("__ts_dis_", c, subs)
}

// Synthesize renders the clause as a flat list of signed solver
// identifiers, in the order s hands back.
func (c *Clause) Synthesize(s Synthesizer) []int {
	ids := make([]int, 0, len(c.lits))
	for _, l := range c.lits {
		ids = append(ids, l.Synthesize(s))
	}
	return s.SynthClause(ids)
}

// CNF is a conjunction of clauses: the output shape of the Tseytin
// transformation and the only shape a Synthesizer ever has to render.
type CNF struct {
	clauses map[string]*Clause
}

// NewCNF builds a CNF from the given clauses, deduplicating by
// structural equality. A CNF with no clauses is vacuously true.
func NewCNF(clauses ...*Clause) *CNF {
	m := make(map[string]*Clause, len(clauses))
	for _, cl := range clauses {
		m[cl.Key()] = cl
	}
	return &CNF{clauses: m}
}

func emptyCNF() *CNF { return NewCNF() }

// Clauses returns the CNF's clauses in no particular order.
func (n *CNF) Clauses() []*Clause {
	out := make([]*Clause, 0, len(n.clauses))
	for _, c := range n.clauses {
		out = append(out, c)
	}
	return out
}

func (n *CNF) formulaChildren() map[string]Formula {
	out := make(map[string]Formula, len(n.clauses))
	for k, c := range n.clauses {
		out[k] = c
	}
	return out
}

func (n *CNF) String() string {
	parts := make([]string, 0, len(n.clauses))
	for _, k := range sortedKeys(n.formulaChildren()) {
		parts = append(parts, n.clauses[k].String())
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

func (n *CNF) Key() string { return canonicalKey("cnf", sortedKeys(n.formulaChildren())) }

func (n *CNF) Hash() uint64 { return Hash64(n.Key()) }

func (n *CNF) Equal(other Formula) bool {
	return other != nil && n.Key() == other.Key()
}

func (n *CNF) TseytinTransform() (Literal, *CNF) {
	subs := make([]Formula, 0, len(n.clauses))
	for _, c := range n.clauses {
		subs = append(subs, c)
	}
	return tseytinAnd("__ts_con_", n, subs)
}

// merge returns the conjunction of n and other, deduplicating shared
// clauses.
func (n *CNF) merge(other *CNF) *CNF {
	m := make(map[string]*Clause, len(n.clauses)+len(other.clauses))
	for k, c := range n.clauses {
		m[k] = c
	}
	for k, c := range other.clauses {
		m[k] = c
	}
	return &CNF{clauses: m}
}

// withClause returns n conjoined with an extra clause.
func (n *CNF) withClause(c *Clause) *CNF {
	return n.merge(NewCNF(c))
}

// Synthesize renders the CNF as the solver-native clause matrix.
func (n *CNF) Synthesize(s Synthesizer) [][]int {
	clauses := make([][]int, 0, len(n.clauses))
	for _, c := range n.clauses {
		clauses = append(clauses, c.Synthesize(s))
	}
	return s.SynthCNF(clauses)
}

// Disjunction is the non-canonical "or" of arbitrary sub-formulae. It
// is produced by Or whenever its operands are not literals/clauses, and
// is always expanded away by TseytinTransform or ToCNF.
type Disjunction struct {
	children map[string]Formula
}

func newDisjunction(children map[string]Formula) *Disjunction {
	return &Disjunction{children: children}
}

func (d *Disjunction) String() string {
	parts := make([]string, 0, len(d.children))
	for _, k := range sortedKeys(d.children) {
		parts = append(parts, d.children[k].String())
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (d *Disjunction) Key() string { return canonicalKey("or", sortedKeys(d.children)) }

func (d *Disjunction) Hash() uint64 { return Hash64(d.Key()) }

func (d *Disjunction) Equal(other Formula) bool {
	return other != nil && d.Key() == other.Key()
}

func (d *Disjunction) TseytinTransform() (Literal, *CNF) {
	subs := make([]Formula, 0, len(d.children))
	for _, c := range d.children {
		subs = append(subs, c)
	}
	return tseytinOr("__ts_dis_", d, subs)
}

// Conjunction is the non-canonical "and" of arbitrary sub-formulae,
// dual to Disjunction.
type Conjunction struct {
	children map[string]Formula
}

func newConjunction(children map[string]Formula) *Conjunction {
	return &Conjunction{children: children}
}

func (a *Conjunction) String() string {
	parts := make([]string, 0, len(a.children))
	for _, k := range sortedKeys(a.children) {
		parts = append(parts, a.children[k].String())
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

func (a *Conjunction) Key() string { return canonicalKey("and", sortedKeys(a.children)) }

func (a *Conjunction) Hash() uint64 { return Hash64(a.Key()) }

func (a *Conjunction) Equal(other Formula) bool {
	return other != nil && a.Key() == other.Key()
}

func (a *Conjunction) TseytinTransform() (Literal, *CNF) {
	subs := make([]Formula, 0, len(a.children))
	for _, c := range a.children {
		subs = append(subs, c)
	}
	return tseytinAnd("__ts_con_", a, subs)
}

// Or builds the disjunction of subs, flattening nested disjunctions and
// clauses of the same kind and promoting to a Clause whenever every
// child turns out to be a literal. Or() with no arguments is the false
// literal: the empty disjunction.
func Or(subs ...Formula) Formula {
	if len(subs) == 0 {
		return False
	}
	result := subs[0]
	for _, next := range subs[1:] {
		result = or2(result, next)
	}
	return result
}

// And is the dual of Or: And() with no arguments is True, the empty
// conjunction.
func And(subs ...Formula) Formula {
	if len(subs) == 0 {
		return True
	}
	result := subs[0]
	for _, next := range subs[1:] {
		result = and2(result, next)
	}
	return result
}

func or2(a, b Formula) Formula {
	litA, aIsLit := a.(Literal)
	litB, bIsLit := b.(Literal)

	switch {
	case aIsLit && bIsLit:
		return NewClause(litA, litB)
	case isClause(a) && bIsLit:
		return unionClauseLit(a.(*Clause), litB)
	case aIsLit && isClause(b):
		return unionClauseLit(b.(*Clause), litA)
	case isClause(a) && isClause(b):
		return unionClauses(a.(*Clause), b.(*Clause))
	}

	children := make(map[string]Formula)
	addDisjunctionChild(children, a)
	addDisjunctionChild(children, b)
	return promoteDisjunction(children)
}

func and2(a, b Formula) Formula {
	litA, aIsLit := a.(Literal)
	litB, bIsLit := b.(Literal)

	switch {
	case aIsLit && bIsLit:
		return NewCNF(NewClause(litA), NewClause(litB))
	case isCNF(a) && isCNF(b):
		return a.(*CNF).merge(b.(*CNF))
	case isCNF(a) && isClause(b):
		return a.(*CNF).withClause(b.(*Clause))
	case isClause(a) && isCNF(b):
		return b.(*CNF).withClause(a.(*Clause))
	case isClause(a) && isClause(b):
		return NewCNF(a.(*Clause), b.(*Clause))
	case isCNF(a) && bIsLit:
		return a.(*CNF).withClause(NewClause(litB))
	case aIsLit && isCNF(b):
		return b.(*CNF).withClause(NewClause(litA))
	case isClause(a) && bIsLit:
		return NewCNF(a.(*Clause), NewClause(litB))
	case aIsLit && isClause(b):
		return NewCNF(NewClause(litA), b.(*Clause))
	}

	children := make(map[string]Formula)
	addConjunctionChild(children, a)
	addConjunctionChild(children, b)
	return promoteConjunction(children)
}

func isClause(f Formula) bool { _, ok := f.(*Clause); return ok }
func isCNF(f Formula) bool    { _, ok := f.(*CNF); return ok }

func unionClauseLit(c *Clause, l Literal) *Clause {
	lits := make([]Literal, 0, len(c.lits)+1)
	for _, existing := range c.lits {
		lits = append(lits, existing)
	}
	lits = append(lits, l)
	return NewClause(lits...)
}

func unionClauses(a, b *Clause) *Clause {
	lits := make([]Literal, 0, len(a.lits)+len(b.lits))
	for _, l := range a.lits {
		lits = append(lits, l)
	}
	for _, l := range b.lits {
		lits = append(lits, l)
	}
	return NewClause(lits...)
}

// addDisjunctionChild flattens nested Disjunctions (and Clauses, which
// are themselves a flat disjunction of literals) into children.
func addDisjunctionChild(children map[string]Formula, f Formula) {
	switch v := f.(type) {
	case *Disjunction:
		for k, c := range v.children {
			children[k] = c
		}
	case *Clause:
		for _, l := range v.lits {
			children[l.Key()] = l
		}
	default:
		children[f.Key()] = f
	}
}

func addConjunctionChild(children map[string]Formula, f Formula) {
	switch v := f.(type) {
	case *Conjunction:
		for k, c := range v.children {
			children[k] = c
		}
	case *CNF:
		for _, c := range v.clauses {
			children[c.Key()] = c
		}
	default:
		children[f.Key()] = f
	}
}

// promoteDisjunction returns a Clause if every child is a literal, a
// single child unwrapped if there is exactly one, False if there are
// none, or a general Disjunction otherwise.
func promoteDisjunction(children map[string]Formula) Formula {
	if len(children) == 0 {
		return False
	}
	if len(children) == 1 {
		for _, c := range children {
			return c
		}
	}
	lits := make([]Literal, 0, len(children))
	allLiterals := true
	for _, c := range children {
		l, ok := c.(Literal)
		if !ok {
			allLiterals = false
			break
		}
		lits = append(lits, l)
	}
	if allLiterals {
		return NewClause(lits...)
	}
	return newDisjunction(children)
}

func promoteConjunction(children map[string]Formula) Formula {
	if len(children) == 0 {
		return True
	}
	if len(children) == 1 {
		for _, c := range children {
			return c
		}
	}
	clauses := make([]*Clause, 0, len(children))
	allClauses := true
	for _, c := range children {
		cl, ok := c.(*Clause)
		if !ok {
			allClauses = false
			break
		}
		clauses = append(clauses, cl)
	}
	if allClauses {
		return NewCNF(clauses...)
	}
	return newConjunction(children)
}
