// Package bf parses, evaluates and tabulates propositional formulas.
//
// Formulas are written with variables (one or more ASCII letters, case-sensitive),
// the literals "true" and "false", parentheses and the following operators:
//
// - "!" for a negation, applied to the single atom that follows it,
// - "&" for a conjunction,
// - "|" for a disjunction,
// - "=>" for an implication,
// - "<=>" for an equivalence.
//
// The four binary operators share the same priority and are folded from left to right,
// so the following formula:
//
// !a & b | c => d
//
// is read as
//
// (((!a & b) | c) => d)
//
// Parentheses are the only way to change that order.
//
// Once parsed, a formula can be evaluated against an Assignment, or its whole truth table
// can be computed:
//
//	f, _ := bf.ParseString("a | b")
//	t := bf.TruthTable(f)
//	// t.Vars is [a b], t.Rows holds the 4 assignments with their result.
//
// Several named formulas can also be parsed at once, as a Program:
//
// x = a & b;
// y = a | b;
//
// Every formula of a program is then evaluated over a single truth table built on the union of their variables.
//
// Note that the size of a truth table is exponential in the number of variables.
// Callers are expected to bound the number of variables they accept.
package bf
