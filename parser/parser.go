// Package parser implements a recursive-descent parser that turns a regular
// expression's token stream into a compiled nfa.NFA via Thompson
// construction.
//
// Grammar (right-recursive, matching operator precedence low to high:
// union, concatenation, Kleene star):
//
//	Expr       -> UnionVal UnionOp
//	UnionOp    -> ('+' UnionVal UnionOp)?
//	UnionVal   -> ConcatVal ConcatOp
//	ConcatOp   -> (('.' | <implicit>) ConcatVal ConcatOp)?
//	ConcatVal  -> KleeneVal KleeneOp
//	KleeneOp   -> '*'*
//	KleeneVal  -> '(' Expr ')' | Character
//
// Concatenation may be written explicitly with '.', or implicitly by simple
// juxtaposition: "ab" means the same thing as "a.b". '*' is idempotent:
// "a**" means the same thing as "a*".
package parser

import (
	"fmt"
	"strings"

	"github.com/arelion/fsarex/lexer"
	"github.com/arelion/fsarex/nfa"
)

// DefaultSigma is the alphabet of literal symbols a pattern may use:
// lowercase and uppercase ASCII letters and digits.
var DefaultSigma = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// Error reports a syntax error encountered while parsing a pattern, with a
// caret diagnostic pointing at the offending span.
type Error struct {
	Source  string
	Pos     int
	Width   int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Message)
}

// Diagnostic renders the source line followed by a line of carets under the
// offending span.
func (e *Error) Diagnostic() string {
	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", e.Pos))
	width := e.Width
	if width < 1 {
		width = 1
	}
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}

// Parse compiles pattern into an NFA. It first tokenizes the pattern with
// lexer.Lex (any lexer.Error is returned as-is), then parses the resulting
// tokens under Expr.
func Parse(pattern string) (*nfa.NFA, error) {
	tokens, err := lexer.Lex(pattern)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, source: pattern}
	result := p.expr()
	if p.err != nil {
		return nil, p.err
	}

	if p.i < len(p.tokens) {
		return nil, &Error{
			Source:  pattern,
			Pos:     p.tokens[p.i].Pos,
			Width:   len(pattern) - p.tokens[p.i].Pos,
			Message: "unexpected trailing characters",
		}
	}

	return result, nil
}

// parser holds recursive-descent parsing state: the token stream, current
// position, an accumulator stack of in-progress NFA fragments (mirroring
// the original grammar's value stack), and the first error encountered.
type parser struct {
	tokens []lexer.Token
	i      int
	source string
	stack  []*nfa.NFA
	err    error
}

func (p *parser) push(n *nfa.NFA) { p.stack = append(p.stack, n) }

func (p *parser) pop() *nfa.NFA {
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return n
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.i < len(p.tokens) {
		return p.tokens[p.i], true
	}
	return lexer.Token{}, false
}

func (p *parser) peekEq(value byte) bool {
	t, ok := p.peek()
	return ok && t.Value == value
}

func (p *parser) peekIsChar() bool {
	t, ok := p.peek()
	return ok && t.Kind == lexer.Character
}

// peekIsImplicitConcat reports whether the current token can begin an
// implicit concatenation with whatever precedes it: a literal character, or
// an opening parenthesis.
func (p *parser) peekIsImplicitConcat() bool {
	t, ok := p.peek()
	return ok && (t.Kind == lexer.Character || t.Value == '(')
}

func (p *parser) fail(pos, width int, msg string) {
	if p.err == nil {
		p.err = &Error{Source: p.source, Pos: pos, Width: width, Message: msg}
	}
}

// sourcePos returns the byte offset to blame for a diagnostic when the
// token stream is exhausted: just past the end of the source.
func (p *parser) sourcePos() int {
	if t, ok := p.peek(); ok {
		return t.Pos
	}
	return len(p.source)
}

func (p *parser) expr() *nfa.NFA {
	p.unionVal()
	p.unionOp()
	if p.err != nil {
		return nil
	}
	return p.pop()
}

func (p *parser) unionOp() {
	if p.err != nil {
		return
	}
	if p.peekEq('+') {
		p.i++
		p.unionVal()
		if p.err != nil {
			return
		}

		rhs := p.pop()
		lhs := p.pop()
		u, err := nfa.Union(lhs, rhs)
		if err != nil {
			p.fail(p.sourcePos(), 1, err.Error())
			return
		}
		p.push(u)

		p.unionOp()
	}
}

func (p *parser) unionVal() {
	p.concatVal()
	p.concatOp()
}

func (p *parser) concatOp() {
	if p.err != nil {
		return
	}

	explicit := p.peekEq('.')
	implicit := !explicit && p.peekIsImplicitConcat()
	if !explicit && !implicit {
		return
	}

	if explicit {
		p.i++
	}

	p.concatVal()
	if p.err != nil {
		return
	}

	rhs := p.pop()
	lhs := p.pop()
	c, err := nfa.Concat(lhs, rhs)
	if err != nil {
		p.fail(p.sourcePos(), 1, err.Error())
		return
	}
	p.push(c)

	p.concatOp()
}

func (p *parser) concatVal() {
	p.kleeneVal()
	p.kleeneOp()
}

func (p *parser) kleeneOp() {
	for p.err == nil && p.peekEq('*') {
		p.i++

		operand := p.pop()
		k, err := nfa.Kleene(operand)
		if err != nil {
			p.fail(p.sourcePos(), 1, err.Error())
			return
		}
		p.push(k)
	}
}

func (p *parser) kleeneVal() {
	if p.err != nil {
		return
	}

	if p.peekEq('(') {
		p.i++
		inner := p.expr()
		if p.err != nil {
			return
		}

		if !p.peekEq(')') {
			p.fail(p.sourcePos(), 1, "expected closing parenthesis")
			return
		}
		p.i++

		p.push(inner)
		return
	}

	if p.peekIsChar() {
		t, _ := p.peek()
		a, err := nfa.Char(t.Value, DefaultSigma)
		if err != nil {
			p.fail(t.Pos, 1, err.Error())
			return
		}
		p.push(a)
		p.i++
		return
	}

	p.fail(p.sourcePos(), 1, "expected a symbol")
}
