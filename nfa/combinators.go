package nfa

import (
	"fmt"

	"github.com/arelion/fsarex/alphabet"
)

// This file implements the Thompson-construction combinators: Char builds a
// single-symbol automaton and Union/Concat/Kleene build new automata out of
// existing ones. Each combinator conceptually takes ownership of its operand
// automata and returns a fresh one built from renumbered copies of their
// states; callers should treat the operands as consumed and not reuse them
// afterward, mirroring the move semantics of the original construction
// routines this package is modeled on.

// requireSameAlphabet fails unless lhs and rhs draw from byte-equal
// alphabets: Union and Concat are only defined over operands sharing one
// alphabet, not over two automata silently merged into a wider one.
func requireSameAlphabet(lhs, rhs *NFA) error {
	if !lhs.Alphabet().Equal(rhs.Alphabet()) {
		return fmt.Errorf("%w: %q vs %q", ErrAlphabetMismatch, lhs.Alphabet().Sigma(), rhs.Alphabet().Sigma())
	}
	return nil
}

// Char builds an automaton accepting exactly the one-symbol word {c}.
// c must belong to sigma.
func Char(c byte, sigma []byte) (*NFA, error) {
	b := NewBuilder()
	start := b.AddState()
	accept := b.AddState()
	b.AddTransition(start, c, accept)
	b.SetStart(start)
	b.SetAccept(accept)
	return b.Build(sigma)
}

// copyInto renumbers every state of n by adding shift, writing its
// transitions and states into b, and returns the renumbered start state and
// final states.
func copyInto(b *Builder, n *NFA, shift int) (start int, finals []int) {
	for q := 0; q <= n.q; q++ {
		b.AddState()
	}
	for _, e := range n.edges() {
		b.AddTransition(e.from+shift, e.sym, e.to+shift)
	}
	for _, f := range n.Initial() {
		start = f + shift
		break // NFA fragments built by these combinators always have one start state
	}
	for _, f := range n.Final() {
		finals = append(finals, f+shift)
	}
	return start, finals
}

// Union builds an automaton accepting L(lhs) union L(rhs). lhs and rhs must
// share a byte-equal alphabet.
func Union(lhs, rhs *NFA) (*NFA, error) {
	if err := requireSameAlphabet(lhs, rhs); err != nil {
		return nil, err
	}

	b := NewBuilder()
	s := b.AddState() // fresh start, state 0

	shift := b.nextState
	lhsStart, lhsFinals := copyInto(b, lhs, shift)
	rhsStart, rhsFinals := copyInto(b, rhs, b.nextState)

	f := b.AddState() // fresh accept state, the highest one

	b.AddTransition(s, alphabet.Epsilon, lhsStart)
	b.AddTransition(s, alphabet.Epsilon, rhsStart)
	for _, q := range append(lhsFinals, rhsFinals...) {
		b.AddTransition(q, alphabet.Epsilon, f)
	}

	b.SetStart(s)
	b.SetAccept(f)

	return b.Build(lhs.Alphabet().Sigma())
}

// Concat builds an automaton accepting L(lhs) . L(rhs) (word concatenation).
// lhs and rhs must share a byte-equal alphabet.
func Concat(lhs, rhs *NFA) (*NFA, error) {
	if err := requireSameAlphabet(lhs, rhs); err != nil {
		return nil, err
	}

	b := NewBuilder()

	lhsStart, lhsFinals := copyInto(b, lhs, 0)
	rhsStart, rhsFinals := copyInto(b, rhs, b.nextState)

	for _, f := range lhsFinals {
		b.AddTransition(f, alphabet.Epsilon, rhsStart)
	}

	b.SetStart(lhsStart)
	b.SetAccept(rhsFinals...)

	return b.Build(lhs.Alphabet().Sigma())
}

// Kleene builds an automaton accepting L(operand)*, the Kleene star.
func Kleene(operand *NFA) (*NFA, error) {
	b := NewBuilder()
	s := b.AddState() // fresh start state 0

	opStart, opFinals := copyInto(b, operand, b.nextState)
	f := b.AddState() // fresh accept state, the highest one

	b.AddTransition(s, alphabet.Epsilon, opStart)
	b.AddTransition(s, alphabet.Epsilon, f)
	for _, q := range opFinals {
		b.AddTransition(q, alphabet.Epsilon, opStart)
		b.AddTransition(q, alphabet.Epsilon, f)
	}

	b.SetStart(s)
	b.SetAccept(f)

	return b.Build(operand.Alphabet().Sigma())
}
