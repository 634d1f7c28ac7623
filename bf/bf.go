package bf

import "fmt"

// A Formula is any kind of propositional formula.
// Formulas are immutable trees: each operator owns its subformulas.
type Formula interface {
	// String returns the fully parenthesized form of the formula.
	// Parsing that string yields the same formula.
	String() string
	// Tree returns the formula as nested constructors, e.g "and(a, not(b))".
	Tree() string
	eval(model Assignment) bool
	vars(set map[string]struct{})
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) String() string { return "true" }
func (t trueConst) Tree() string   { return "true" }

func (t trueConst) eval(model Assignment) bool { return true }

func (t trueConst) vars(set map[string]struct{}) {}

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) String() string { return "false" }
func (f falseConst) Tree() string   { return "false" }

func (f falseConst) eval(model Assignment) bool { return false }

func (f falseConst) vars(set map[string]struct{}) {}

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return variable{name: name}
}

type variable struct {
	name string
}

func (v variable) String() string { return v.name }
func (v variable) Tree() string   { return v.name }

func (v variable) eval(model Assignment) bool {
	b, ok := model[v.name]
	if !ok {
		panic(&UnboundVariableError{Name: v.name})
	}
	return b
}

func (v variable) vars(set map[string]struct{}) {
	set[v.name] = struct{}{}
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string { return "!" + n[0].String() }
func (n not) Tree() string   { return "not(" + n[0].Tree() + ")" }

func (n not) eval(model Assignment) bool {
	return !n[0].eval(model)
}

func (n not) vars(set map[string]struct{}) {
	n[0].vars(set)
}

// Op is one of the binary operators.
type Op int

const (
	OpAnd     Op = iota // "&"
	OpOr                // "|"
	OpImplies           // "=>"
	OpEq                // "<=>"
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpImplies:
		return "=>"
	case OpEq:
		return "<=>"
	default:
		panic(fmt.Sprintf("invalid operator %d", int(op)))
	}
}

// Apply builds the formula combining l and r with op.
func (op Op) Apply(l, r Formula) Formula {
	switch op {
	case OpAnd:
		return And(l, r)
	case OpOr:
		return Or(l, r)
	case OpImplies:
		return Implies(l, r)
	case OpEq:
		return Eq(l, r)
	default:
		panic(fmt.Sprintf("invalid operator %d", int(op)))
	}
}

func binaryString(op Op, l, r Formula) string {
	return "(" + l.String() + " " + op.String() + " " + r.String() + ")"
}

func binaryTree(name string, l, r Formula) string {
	return name + "(" + l.Tree() + ", " + r.Tree() + ")"
}

// And generates the conjunction of two subformulas.
func And(l, r Formula) Formula {
	return and{l, r}
}

type and [2]Formula

func (a and) String() string { return binaryString(OpAnd, a[0], a[1]) }
func (a and) Tree() string   { return binaryTree("and", a[0], a[1]) }

// Both sides are always evaluated.
func (a and) eval(model Assignment) bool {
	l, r := a[0].eval(model), a[1].eval(model)
	return l && r
}

func (a and) vars(set map[string]struct{}) {
	a[0].vars(set)
	a[1].vars(set)
}

// Or generates the disjunction of two subformulas.
func Or(l, r Formula) Formula {
	return or{l, r}
}

type or [2]Formula

func (o or) String() string { return binaryString(OpOr, o[0], o[1]) }
func (o or) Tree() string   { return binaryTree("or", o[0], o[1]) }

func (o or) eval(model Assignment) bool {
	l, r := o[0].eval(model), o[1].eval(model)
	return l || r
}

func (o or) vars(set map[string]struct{}) {
	o[0].vars(set)
	o[1].vars(set)
}

// Implies indicates a subformula implies another one.
func Implies(l, r Formula) Formula {
	return implies{l, r}
}

type implies [2]Formula

func (i implies) String() string { return binaryString(OpImplies, i[0], i[1]) }
func (i implies) Tree() string   { return binaryTree("implies", i[0], i[1]) }

func (i implies) eval(model Assignment) bool {
	l, r := i[0].eval(model), i[1].eval(model)
	return !l || r
}

func (i implies) vars(set map[string]struct{}) {
	i[0].vars(set)
	i[1].vars(set)
}

// Eq indicates a subformula is equivalent to another one.
func Eq(l, r Formula) Formula {
	return eq{l, r}
}

type eq [2]Formula

func (e eq) String() string { return binaryString(OpEq, e[0], e[1]) }
func (e eq) Tree() string   { return binaryTree("eq", e[0], e[1]) }

func (e eq) eval(model Assignment) bool {
	return e[0].eval(model) == e[1].eval(model)
}

func (e eq) vars(set map[string]struct{}) {
	e[0].vars(set)
	e[1].vars(set)
}
