// Package lexer tokenizes regular expression source text for the parser
// package.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind names the category of a lexical unit.
type Kind int

const (
	// Character is a literal alphanumeric symbol.
	Character Kind = iota
	// Operator is one of '+' (union), '.' (explicit concatenation), '*' (Kleene star).
	Operator
	// Parenthesis is '(' or ')'.
	Parenthesis
)

func (k Kind) String() string {
	switch k {
	case Character:
		return "Character"
	case Operator:
		return "Operator"
	case Parenthesis:
		return "Parenthesis"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical unit together with the byte offset into the
// source it was read from.
type Token struct {
	Kind  Kind
	Value byte
	Pos   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, rune(t.Value))
}

// Error reports a lexical error: an unrecognized character at a given
// position in the source text.
type Error struct {
	Source string
	Pos    int
	Char   byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error: unknown lexeme %q", rune(e.Char))
}

// Diagnostic renders a two-line caret diagnostic pointing at the offending
// character, in the style:
//
//	a+!b
//	  ^
func (e *Error) Diagnostic() string {
	return diagnostic(e.Source, e.Pos, 1)
}

// diagnostic renders the source line followed by a line of spaces and
// `width` carets starting at column pos.
func diagnostic(source string, pos, width int) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", pos))
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}

func isOperator(c byte) bool {
	return c == '+' || c == '.' || c == '*'
}

func isParenthesis(c byte) bool {
	return c == '(' || c == ')'
}

// Lex tokenizes s into a stream of Tokens. Whitespace is skipped. Any byte
// that is not alphanumeric, an operator, a parenthesis, or whitespace
// produces an *Error.
func Lex(s string) ([]Token, error) {
	tokens := make([]Token, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlnum(c):
			tokens = append(tokens, Token{Kind: Character, Value: c, Pos: i})
		case isOperator(c):
			tokens = append(tokens, Token{Kind: Operator, Value: c, Pos: i})
		case isParenthesis(c):
			tokens = append(tokens, Token{Kind: Parenthesis, Value: c, Pos: i})
		case unicode.IsSpace(rune(c)):
			// skip
		default:
			return nil, &Error{Source: s, Pos: i, Char: c}
		}
	}

	return tokens, nil
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
