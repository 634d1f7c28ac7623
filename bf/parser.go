package bf

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type parser struct {
	input string
	pos   int // Index of the next byte to read
}

// operators are sorted so that longer spellings are tried first.
var operators = [...]struct {
	token string
	op    Op
}{
	{"<=>", OpEq},
	{"=>", OpImplies},
	{"&", OpAnd},
	{"|", OpOr},
}

// Parse parses the formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written using the following operators, that all have the same priority
// and are applied from left to right:
//
// - for a conjunction ("and"), the "&" operator,
// - for a disjunction ("or"), the "|" operator,
// - for an implication, the "=>" operator,
// - for an equivalence, the "<=>" operator.
//
// The "!" unary operator negates the variable, constant, negation or parenthesized subformula that follows it.
// Parentheses can be used to group subformulas.
// The whole input must be a single formula, surrounded by optional whitespace.
func Parse(r io.Reader) (Formula, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read formula")
	}
	return ParseString(string(b))
}

// ParseString is like Parse, but reads the formula from a string.
// Errors are of type *ParseError.
func ParseString(s string) (Formula, error) {
	p := parser{input: s}
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("expected operator or end of input")
	}
	return f, nil
}

// ParseProgram parses a sequence of statements "name = formula;" from the given input Reader.
// Statements are returned in source order. Names are not checked for uniqueness.
func ParseProgram(r io.Reader) (Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read program")
	}
	return ParseProgramString(string(b))
}

// ParseProgramString is like ParseProgram, but reads the program from a string.
// Errors are of type *ParseError.
func ParseProgramString(s string) (Program, error) {
	p := parser{input: s}
	return p.parseProgram()
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: p.pos, Remaining: p.input[p.pos:], Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

// accept consumes c if it is the next byte.
func (p *parser) accept(c byte) bool {
	if !p.eof() && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) identifier() (string, error) {
	start := p.pos
	for !p.eof() && isLetter(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	return p.input[start:p.pos], nil
}

func (p *parser) operator() (Op, bool) {
	rest := p.input[p.pos:]
	for _, o := range operators {
		if strings.HasPrefix(rest, o.token) {
			p.pos += len(o.token)
			return o.op, true
		}
	}
	return 0, false
}

func (p *parser) parseProgram() (Program, error) {
	var prog Program
	for {
		p.skipWhitespace()
		if p.eof() {
			return prog, nil
		}
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if !p.accept('=') {
			return nil, p.errorf("expected '=' after name %q", name)
		}
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(';') {
			return nil, p.errorf("expected ';' after formula %q", name)
		}
		prog = append(prog, NamedFormula{Name: name, Formula: f})
	}
}

func (p *parser) parseExpr() (Formula, error) {
	p.skipWhitespace()
	f, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	return f, nil
}

// parseBinary reads an atom followed by any number of (operator, atom) pairs
// and folds them from left to right.
func (p *parser) parseBinary() (Formula, error) {
	f, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipWhitespace()
		op, ok := p.operator()
		if !ok {
			return f, nil
		}
		p.skipWhitespace()
		f2, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		f = op.Apply(f, f2)
	}
}

func (p *parser) parseAtom() (f Formula, err error) {
	p.skipWhitespace()
	if p.eof() {
		return nil, p.errorf("expected expression")
	}
	switch c := p.input[p.pos]; {
	case c == '!':
		p.pos++
		p.skipWhitespace()
		f, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
		f = Not(f)
	case c == '(':
		p.pos++
		f, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, p.errorf("expected closing parenthesis")
		}
	case isLetter(c):
		var name string
		if name, err = p.identifier(); err != nil {
			return nil, err
		}
		f = term(name)
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
	p.skipWhitespace()
	return f, nil
}

// term turns an identifier into a constant or a variable.
func term(name string) Formula {
	switch name {
	case "true":
		return True
	case "false":
		return False
	default:
		return Var(name)
	}
}
