package bf

import (
	"iter"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
)

// maxRowsBits is the largest number of variables whose row count fits in a uint64.
const maxRowsBits = 63

// RowCount returns the number of rows of a truth table over nbVars variables, i.e 2^nbVars.
// It fails if nbVars is negative or if the count does not fit in a uint64.
func RowCount(nbVars int) (uint64, error) {
	n, err := safecast.ToUint8(nbVars)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number of variables %d", nbVars)
	}
	if n > maxRowsBits {
		return 0, errors.Errorf("too many variables (%d), truth table size overflows", nbVars)
	}
	return 1 << n, nil
}

// uniq returns vars without the duplicate names, keeping the first occurrence of each.
func uniq(vars []string) []string {
	seen := make(map[string]struct{}, len(vars))
	res := make([]string, 0, len(vars))
	for _, v := range vars {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// AllAssignments returns the 2^n assignments of the n given variables.
// The list is built by doubling: starting from the single empty assignment,
// each variable, in the given order, replaces every assignment by two copies,
// the first one binding the variable to false, the second one to true.
// Hence the first variable changes the least often and the first row binds everything to false.
// Each assignment is a distinct map.
// Memory usage is exponential in n; see Assignments for a lazy version.
func AllAssignments(vars []string) []Assignment {
	res := []Assignment{{}}
	for _, v := range uniq(vars) {
		next := make([]Assignment, 0, 2*len(res))
		for _, a := range res {
			next = append(next, a.with(v, false), a.with(v, true))
		}
		res = next
	}
	return res
}

// Assignments lazily yields the same assignments as AllAssignments, in the same order.
// Only one row is built at a time.
func Assignments(vars []string) iter.Seq[Assignment] {
	vars = uniq(vars)
	return func(yield func(Assignment) bool) {
		vals := make([]bool, len(vars))
		for {
			a := make(Assignment, len(vars))
			for i, v := range vars {
				a[v] = vals[i]
			}
			if !yield(a) {
				return
			}
			// Binary increment, the last variable being the least significant.
			i := len(vals) - 1
			for i >= 0 && vals[i] {
				vals[i] = false
				i--
			}
			if i < 0 {
				return
			}
			vals[i] = true
		}
	}
}

// A Row is a line of a truth table.
type Row struct {
	Assignment Assignment
	Value      bool
}

// A Table is the truth table of a formula.
type Table struct {
	Vars []string // Free variables of the formula, sorted
	Rows []Row
}

// TruthTable returns the truth table of f over its free variables.
// Rows are ordered as by AllAssignments(FreeVars(f)).
func TruthTable(f Formula) *Table {
	vars := FreeVars(f)
	assignments := AllAssignments(vars)
	rows := make([]Row, len(assignments))
	for i, a := range assignments {
		rows[i] = Row{Assignment: a, Value: f.eval(a)}
	}
	return &Table{Vars: vars, Rows: rows}
}

// Kind is the class of a formula with regard to its truth table.
type Kind int

const (
	Contingent    Kind = iota // Formula is true for some assignments, false for others
	Tautology                 // Formula is always true
	Contradiction             // Formula is always false
)

func (k Kind) String() string {
	switch k {
	case Contingent:
		return "contingent"
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Classify tells whether f is a tautology, a contradiction or neither.
// Assignments are enumerated lazily and enumeration stops as soon as f was seen both true and false.
func Classify(f Formula) Kind {
	var seenTrue, seenFalse bool
	for a := range Assignments(FreeVars(f)) {
		if f.eval(a) {
			seenTrue = true
		} else {
			seenFalse = true
		}
		if seenTrue && seenFalse {
			return Contingent
		}
	}
	if seenTrue {
		return Tautology
	}
	return Contradiction
}

// Equivalent returns true iff f1 and f2 have the same value under every assignment
// of the union of their variables.
func Equivalent(f1, f2 Formula) bool {
	return Classify(Eq(f1, f2)) == Tautology
}
