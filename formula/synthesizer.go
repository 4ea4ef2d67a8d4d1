package formula

import "sort"

// trueID is the solver identifier permanently reserved for the
// constant-true literal. Ordinary variables are allocated starting at
// variableIDOffset so that the reserved id never collides with one.
const (
	trueID           = 1
	variableIDOffset = 2
)

// Synthesizer renames the symbolic variables and literals of a CNF into
// the dense, positive integer identifiers a DIMACS-style solver expects,
// and translates a returned model back into solver-agnostic literal
// names. Formula and Literal implementations call into a Synthesizer
// rather than assigning ids themselves, so the same CNF can be handed to
// different solver bindings without re-walking the formula tree.
type Synthesizer interface {
	// SynthVariable returns the id for a named variable, allocating one
	// on first use and reusing it for every later occurrence of the same
	// name.
	SynthVariable(name string) int

	// SynthNegation returns the id representing the negation of id.
	SynthNegation(id int) int

	// SynthTrue returns the id of the constant-true literal.
	SynthTrue() int

	// SynthClause is called with the ids of one clause's literals; it
	// returns the slice that should actually be handed to the solver.
	SynthClause(ids []int) []int

	// SynthCNF is called with the full clause matrix after every clause
	// has gone through SynthClause.
	SynthCNF(clauses [][]int) [][]int

	// Translate maps a solver model (signed ids) back to signed literal
	// names, dropping the reserved true id and anything the synthesizer
	// never allocated.
	Translate(model []int) []string

	// Assumptions returns the assumption list that must be handed to the
	// solver alongside the CNF: the true id first, fixing the
	// constant-true literal true, followed by the synthesized ids of
	// assignments in order. assignments may be nil or empty.
	Assumptions(assignments []Literal) []int

	// KnownVariables returns the names of every variable allocated so
	// far, sorted for deterministic iteration.
	KnownVariables() []string
}

// DefaultSynthesizer is the package's reference Synthesizer: a memoized
// name-to-id registry with dense allocation starting at
// variableIDOffset, id 1 reserved for true.
type DefaultSynthesizer struct {
	nextID   int
	nameToID map[string]int
	idToName map[int]string
}

// NewDefaultSynthesizer returns an empty synthesizer ready to allocate
// variable ids.
func NewDefaultSynthesizer() *DefaultSynthesizer {
	return &DefaultSynthesizer{
		nextID:   variableIDOffset,
		nameToID: make(map[string]int),
		idToName: make(map[int]string),
	}
}

func (s *DefaultSynthesizer) SynthTrue() int { return trueID }

func (s *DefaultSynthesizer) SynthNegation(id int) int { return -id }

func (s *DefaultSynthesizer) SynthVariable(name string) int {
	if id, ok := s.nameToID[name]; ok {
		return id
	}
	id := s.nextID
	s.nextID++
	s.nameToID[name] = id
	s.idToName[id] = name
	return id
}

func (s *DefaultSynthesizer) SynthClause(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (s *DefaultSynthesizer) SynthCNF(clauses [][]int) [][]int {
	return clauses
}

func (s *DefaultSynthesizer) Translate(model []int) []string {
	out := make([]string, 0, len(model))
	for _, id := range model {
		abs, negated := id, false
		if abs < 0 {
			abs, negated = -abs, true
		}
		if abs < variableIDOffset {
			continue
		}
		name, ok := s.idToName[abs]
		if !ok {
			continue
		}
		if negated {
			out = append(out, "-"+name)
		} else {
			out = append(out, name)
		}
	}
	return out
}

func (s *DefaultSynthesizer) Assumptions(assignments []Literal) []int {
	out := make([]int, 0, len(assignments)+1)
	out = append(out, trueID)
	for _, lit := range assignments {
		out = append(out, lit.Synthesize(s))
	}
	return out
}

func (s *DefaultSynthesizer) KnownVariables() []string {
	names := make([]string, 0, len(s.nameToID))
	for name := range s.nameToID {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
