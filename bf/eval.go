package bf

import (
	"sort"
	"strconv"
	"strings"
)

// An Assignment associates variable names with their boolean value.
type Assignment map[string]bool

// String returns the bindings sorted by name, e.g "{a:true b:false}".
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(":" + strconv.FormatBool(a[name]))
	}
	b.WriteByte('}')
	return b.String()
}

// with returns a copy of a where name is bound to val.
func (a Assignment) with(name string, val bool) Assignment {
	res := make(Assignment, len(a)+1)
	for k, v := range a {
		res[k] = v
	}
	res[name] = val
	return res
}

// FreeVars returns the distinct names of the variables appearing in f, sorted lexicographically.
func FreeVars(f Formula) []string {
	set := make(map[string]struct{})
	f.vars(set)
	return sortedNames(set)
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates f under the given model.
// All variables of f must be bound in model: they are checked before
// any evaluation happens, and the first missing one, in lexicographic order,
// is returned as an *UnboundVariableError.
// Both operands of every binary operator are always evaluated.
func Eval(f Formula, model Assignment) (bool, error) {
	for _, name := range FreeVars(f) {
		if _, ok := model[name]; !ok {
			return false, &UnboundVariableError{Name: name}
		}
	}
	return f.eval(model), nil
}

// MustEval is like Eval but panics if model lacks a binding.
func MustEval(f Formula, model Assignment) bool {
	res, err := Eval(f, model)
	if err != nil {
		panic(err)
	}
	return res
}
