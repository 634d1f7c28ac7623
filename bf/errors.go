package bf

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDuplicateName is returned when a program binds the same name to two formulas.
var ErrDuplicateName = errors.New("duplicate formula name")

// A ParseError is returned when an input does not match the formula grammar.
// No partial formula is ever returned along with it.
type ParseError struct {
	Pos       int    // Byte offset of the error in the input
	Remaining string // Unconsumed input, starting at Pos
	Msg       string
}

func (e *ParseError) Error() string {
	if e.Remaining == "" {
		return fmt.Sprintf("at position %d: %s, found EOF", e.Pos, e.Msg)
	}
	return fmt.Sprintf("at position %d: %s, found %q", e.Pos, e.Msg, e.Remaining)
}

// An UnboundVariableError is returned when a formula is evaluated against
// an assignment that lacks one of its variables.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("assignment lacks binding for variable %s", e.Name)
}
