package formula

import "strconv"

// auxLiteral names the Tseytin auxiliary variable standing in for self,
// deriving the name deterministically from self's structural hash so
// that repeated transformation of equal subformulas (e.g. shared
// subexpressions reached through different parents) produces the same
// auxiliary variable rather than a fresh one each time.
func auxLiteral(prefix string, self Formula) Literal {
	return newAuxVariable(prefix + strconv.FormatUint(self.Hash(), 16))
}

// tseytinOr builds the auxiliary s and side CNF for a disjunction-shaped
// node (Clause, Disjunction) whose direct children are subs. It encodes
// s <-> (t1 | ... | tn) as:
//
//	(t1 | ... | tn | ~s)      -- s true forces some ti true
//	(s | ~ti) for each i      -- any ti true forces s true
//
// conjoined with each child's own side constraints.
func tseytinOr(prefix string, self Formula, subs []Formula) (Literal, *CNF) {
	s := auxLiteral(prefix, self)

	ts := make([]Literal, 0, len(subs))
	side := emptyCNF()
	for _, sub := range subs {
		t, psi := sub.TseytinTransform()
		ts = append(ts, t)
		side = side.merge(psi)
	}

	longLits := make([]Literal, 0, len(ts)+1)
	longLits = append(longLits, ts...)
	longLits = append(longLits, notLiteral(s))
	clauses := make([]*Clause, 0, len(ts)+1)
	clauses = append(clauses, NewClause(longLits...))
	for _, t := range ts {
		clauses = append(clauses, NewClause(s, notLiteral(t)))
	}

	return s, side.merge(NewCNF(clauses...))
}

// tseytinAnd is the dual of tseytinOr, encoding s <-> (t1 & ... & tn) as:
//
//	(s | ~t1 | ... | ~tn)     -- every ti true forces s true
//	(~s | ti) for each i      -- s true forces every ti true
func tseytinAnd(prefix string, self Formula, subs []Formula) (Literal, *CNF) {
	s := auxLiteral(prefix, self)

	ts := make([]Literal, 0, len(subs))
	side := emptyCNF()
	for _, sub := range subs {
		t, psi := sub.TseytinTransform()
		ts = append(ts, t)
		side = side.merge(psi)
	}

	longLits := make([]Literal, 0, len(ts)+1)
	longLits = append(longLits, s)
	for _, t := range ts {
		longLits = append(longLits, notLiteral(t))
	}
	clauses := make([]*Clause, 0, len(ts)+1)
	clauses = append(clauses, NewClause(longLits...))
	for _, t := range ts {
		clauses = append(clauses, NewClause(notLiteral(s), t))
	}

	return s, side.merge(NewCNF(clauses...))
}
