// Copyright (c) 2024 Silvano DAL ZILIO
//
// MIT License

package cnf

import (
	"github.com/dalzilio/robdd"
)

// Mapper walks diagrams produced by a single robdd.Builder and accumulates
// their Tseitin encoding as DIMACS-numbered clauses. A Mapper is stateful:
// repeated calls to Encode on nodes from the same diagram, or on diagrams
// sharing subgraphs, reuse the literals and clauses already emitted, so the
// resulting CNF stays linear in the number of distinct nodes visited rather
// than the number of Encode calls.
type Mapper struct {
	b *robdd.Builder

	next int // last DIMACS variable number allocated

	sourceVars map[int]int      // original BDD variable index -> DIMACS variable
	nodeLits   map[robdd.Node]int // node identity -> literal standing for it

	trueVar  int
	falseVar int

	clauses [][]int
}

// NewMapper creates a Mapper for diagrams owned by b.
func NewMapper(b *robdd.Builder) *Mapper {
	return &Mapper{
		b:          b,
		sourceVars: make(map[int]int),
		nodeLits:   make(map[robdd.Node]int),
	}
}

func (m *Mapper) fresh() int {
	m.next++
	return m.next
}

// remap returns the DIMACS variable standing for the original BDD variable
// choice, allocating one on first use.
func (m *Mapper) remap(choice int) int {
	if v, ok := m.sourceVars[choice]; ok {
		return v
	}
	v := m.fresh()
	m.sourceVars[choice] = v
	return v
}

// Remap reports the DIMACS variable already assigned to source variable
// choice, and whether Encode has visited a node testing that variable. It
// performs no allocation, unlike remap: it is the read side of the mapping,
// used to project a solver's model back onto source variables.
func (m *Mapper) Remap(choice int) (int, bool) {
	v, ok := m.sourceVars[choice]
	return v, ok
}

// ProjectModel projects a model keyed by DIMACS variable, such as one
// returned by a satsolver.Backend, back onto the source BDD variables this
// Mapper has encoded.
func (m *Mapper) ProjectModel(model map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m.sourceVars))
	for choice, v := range m.sourceVars {
		out[choice] = model[v]
	}
	return out
}

func (m *Mapper) trueLiteral() int {
	if m.trueVar == 0 {
		m.trueVar = m.fresh()
		m.clauses = append(m.clauses, []int{m.trueVar})
	}
	return m.trueVar
}

func (m *Mapper) falseLiteral() int {
	if m.falseVar == 0 {
		m.falseVar = m.fresh()
		m.clauses = append(m.clauses, []int{-m.falseVar})
	}
	return m.falseVar
}

// Encode returns the DIMACS literal standing for n, extending the clause
// set as needed. Calling Encode on the two Boolean constants is valid and
// returns a literal pinned true or false by a unit clause.
func (m *Mapper) Encode(n robdd.Node) int {
	if lit, ok := m.nodeLits[n]; ok {
		return lit
	}
	var lit int
	if m.b.IsConstant(n) {
		v, _ := m.b.BoolValue(n)
		if v {
			lit = m.trueLiteral()
		} else {
			lit = m.falseLiteral()
		}
	} else {
		high, low := m.b.High(n), m.b.Low(n)
		cv := m.remap(m.b.Choice(n))
		switch {
		case high == m.b.True() && low == m.b.False():
			// ite(cv, True, False) is just cv: no gate variable needed.
			lit = cv
		case high == m.b.False() && low == m.b.True():
			// ite(cv, False, True) is just not(cv).
			lit = -cv
		default:
			hi := m.Encode(high)
			lo := m.Encode(low)
			nv := m.fresh()
			// nv <-> ite(cv, hi, lo), as four clauses:
			m.clauses = append(m.clauses,
				[]int{-nv, -cv, hi},
				[]int{nv, -cv, -hi},
				[]int{-nv, cv, lo},
				[]int{nv, cv, -lo},
			)
			lit = nv
		}
	}
	m.nodeLits[n] = lit
	return lit
}

// Assert adds a unit clause pinning n's literal to true, the usual way to
// turn "encode this diagram" into "require this diagram to hold".
func (m *Mapper) Assert(n robdd.Node) {
	lit := m.Encode(n)
	m.clauses = append(m.clauses, []int{lit})
}

// Clauses returns the CNF accumulated so far. The returned slice is a copy
// of the Mapper's internal clause list's spine; individual clauses are
// shared and must not be mutated by the caller.
func (m *Mapper) Clauses() [][]int {
	out := make([][]int, len(m.clauses))
	copy(out, m.clauses)
	return out
}

// NumVars returns the number of distinct DIMACS variables allocated so far.
func (m *Mapper) NumVars() int {
	return m.next
}

// Encode is a convenience wrapper for the common case of encoding a single
// diagram and asserting it true: it returns the resulting clauses and
// variable count, ready to hand to a satsolver.Backend.
func Encode(b *robdd.Builder, n robdd.Node) (clauses [][]int, numVars int) {
	m := NewMapper(b)
	m.Assert(n)
	return m.Clauses(), m.NumVars()
}
