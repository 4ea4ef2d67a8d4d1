// Package ginisolve is the one place in this module that talks to an
// actual SAT solver. Packages formula and intvar only ever produce
// data — a CNF and the Synthesizer that named its variables — and
// never call into a concrete backend; ginisolve is a thin adapter
// handing that data to github.com/go-air/gini.
package ginisolve

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/lumip/satform/formula"
)

// Solver pairs a formula.DefaultSynthesizer with a gini instance,
// keeping the map from dense solver ids to gini's own literals so that
// clauses synthesized at different times still share variables.
type Solver struct {
	synth *formula.DefaultSynthesizer
	g     *gini.Gini
	lits  map[int]z.Lit
}

// New returns an empty solver.
func New() *Solver {
	return &Solver{
		synth: formula.NewDefaultSynthesizer(),
		g:     gini.New(),
		lits:  make(map[int]z.Lit),
	}
}

// Synthesizer returns the solver's backing Synthesizer, for use when
// rendering a formula.CNF via CNF.Synthesize before calling Assert.
func (s *Solver) Synthesizer() formula.Synthesizer {
	return s.synth
}

func (s *Solver) litFor(id int) z.Lit {
	v, negated := id, false
	if v < 0 {
		v, negated = -v, true
	}
	l, ok := s.lits[v]
	if !ok {
		l = s.g.Lit()
		s.lits[v] = l
	}
	if negated {
		return l.Not()
	}
	return l
}

// Assert teaches the solver every clause in a synthesized clause
// matrix, as produced by formula.CNF.Synthesize.
func (s *Solver) Assert(clauses [][]int) {
	for _, clause := range clauses {
		for _, id := range clause {
			s.g.Add(s.litFor(id))
		}
		s.g.Add(0)
	}
}

// Solve checks satisfiability under the given solver-id assumptions
// (typically formula.Synthesizer.Assumptions, extended with whatever
// scenario-specific assumptions the caller wants fixed). On a
// satisfiable result it returns the model translated back to signed
// literal names via the solver's Synthesizer.
func (s *Solver) Solve(assumptions []int) (sat bool, model []string, err error) {
	lits := make([]z.Lit, len(assumptions))
	for i, id := range assumptions {
		lits[i] = s.litFor(id)
	}
	s.g.Assume(lits...)

	switch s.g.Solve() {
	case 1:
		ids := make([]int, 0, len(s.lits))
		for id, l := range s.lits {
			if s.g.Value(l) {
				ids = append(ids, id)
			} else {
				ids = append(ids, -id)
			}
		}
		log.WithField("variables", len(ids)).Debug("ginisolve: satisfiable")
		return true, s.synth.Translate(ids), nil
	case -1:
		log.Debug("ginisolve: unsatisfiable")
		return false, nil, nil
	default:
		return false, nil, errors.New("ginisolve: solve canceled")
	}
}

// SolveFormula runs the full formula -> CNF -> synthesize -> assert ->
// solve pipeline for a single top-level formula. It is meant for
// demos and tests; callers juggling many constraints across a shared
// variable space (such as package sudoku) should synthesize once and
// call Assert/Solve directly so variables stay shared across clauses.
func (s *Solver) SolveFormula(f formula.Formula) (bool, []string, error) {
	cnf := formula.ToCNF(f)
	clauses := cnf.Synthesize(s.synth)
	s.Assert(clauses)
	return s.Solve(s.synth.Assumptions(nil))
}
