// Package fsarex compiles regular expressions into Thompson-construction
// automata and recognizes strings against them.
//
// Compile parses a pattern written in the grammar implemented by the parser
// package (literal symbols, '+' union, '.' or implicit concatenation, '*'
// Kleene star, and parentheses) into a Pattern backed by an nfa.NFA. DFA and
// NFA descriptions can also be read directly from the textual format
// documented in the loader package.
package fsarex

import (
	"github.com/arelion/fsarex/dfa"
	"github.com/arelion/fsarex/nfa"
	"github.com/arelion/fsarex/parser"
)

// Pattern is a compiled regular expression, ready to recognize strings.
type Pattern struct {
	nfa *nfa.NFA
}

// Compile parses and compiles pattern, returning a *parser.Error (with a
// caret diagnostic) or a *lexer.Error on malformed input.
func Compile(pattern string) (*Pattern, error) {
	n, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{nfa: n}, nil
}

// MustCompile is like Compile but panics if pattern cannot be compiled.
// It is intended for use with patterns known at compile time, such as
// package-level variable initialization.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(`fsarex: Compile(` + pattern + `): ` + err.Error())
	}
	return p
}

// MatchString reports whether s is accepted by the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.nfa.Recognize(s)
}

// NFA returns the underlying compiled automaton.
func (p *Pattern) NFA() *nfa.NFA {
	return p.nfa
}

// String returns the pattern's underlying automaton summary.
func (p *Pattern) String() string {
	return p.nfa.String()
}

// LoadedDFA wraps a DFA read from a description file, giving it the same
// MatchString surface as Pattern.
type LoadedDFA struct {
	dfa *dfa.DFA
}

// NewLoadedDFA wraps d for convenience use alongside Pattern.
func NewLoadedDFA(d *dfa.DFA) *LoadedDFA {
	return &LoadedDFA{dfa: d}
}

// MatchString reports whether s is accepted by the DFA.
func (l *LoadedDFA) MatchString(s string) bool {
	return l.dfa.Recognize(s)
}

// DFA returns the underlying automaton.
func (l *LoadedDFA) DFA() *dfa.DFA {
	return l.dfa
}
