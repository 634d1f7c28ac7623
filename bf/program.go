package bf

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
)

// A NamedFormula is a formula bound to a name by a "name = formula;" statement.
type NamedFormula struct {
	Name    string
	Formula Formula
}

// A Program is a sequence of named formulas, in source order.
type Program []NamedFormula

// Names returns the names of the formulas, in source order.
func (p Program) Names() []string {
	names := make([]string, len(p))
	for i, nf := range p {
		names[i] = nf.Name
	}
	return names
}

// Vars returns the union of the free variables of all formulas, sorted lexicographically.
func (p Program) Vars() []string {
	set := make(map[string]struct{})
	for _, nf := range p {
		nf.Formula.vars(set)
	}
	return sortedNames(set)
}

// String returns the program as a sequence of statements, one per line.
// Parsing that string yields the same program.
func (p Program) String() string {
	var b strings.Builder
	for _, nf := range p {
		b.WriteString(nf.Name)
		b.WriteString(" = ")
		b.WriteString(nf.Formula.String())
		b.WriteString(";\n")
	}
	return b.String()
}

// A ProgramRow is a line of the truth table of a program.
// Results associates each formula name with its value, in source order.
type ProgramRow struct {
	Assignment Assignment
	Results    *orderedmap.OrderedMap[string, bool]
}

// A ProgramTable is the shared truth table of all formulas of a program.
type ProgramTable struct {
	Vars  []string // Union of the free variables, sorted
	Names []string // Formula names, in source order
	Rows  []ProgramRow
}

// Table evaluates every formula of the program over a single truth table
// built on the union of their variables.
// Since results are keyed by name, a program binding the same name twice is rejected
// with an error wrapping ErrDuplicateName.
func (p Program) Table() (*ProgramTable, error) {
	seen := make(map[string]struct{}, len(p))
	for _, nf := range p {
		if _, ok := seen[nf.Name]; ok {
			return nil, errors.Wrapf(ErrDuplicateName, "formula %q", nf.Name)
		}
		seen[nf.Name] = struct{}{}
	}
	vars := p.Vars()
	assignments := AllAssignments(vars)
	rows := make([]ProgramRow, len(assignments))
	for i, a := range assignments {
		results := orderedmap.NewOrderedMap[string, bool]()
		for _, nf := range p {
			results.Set(nf.Name, nf.Formula.eval(a))
		}
		rows[i] = ProgramRow{Assignment: a, Results: results}
	}
	return &ProgramTable{Vars: vars, Names: p.Names(), Rows: rows}, nil
}
