// Package dfa implements deterministic finite automata over the fixed
// alphabet.Alphabet symbol range.
//
// Unlike nfa.NFA, a DFA's transition function is total: every (state,
// symbol) pair maps to exactly one successor, or to alphabet.InvalidIndex's
// automaton-level counterpart, dfa.InvalidState, when no such transition was
// defined. A dfa.DFA is never compiled from a regular expression in this
// module; it is only ever built directly or loaded from a description file
// (see the loader package).
package dfa

import (
	"errors"
	"fmt"
	"sort"

	"github.com/arelion/fsarex/alphabet"
)

// InvalidState marks the absence of a transition.
const InvalidState = -1

// ErrInvalidConfig indicates New was called with malformed parameters.
var ErrInvalidConfig = errors.New("dfa: invalid configuration")

// DFA is a deterministic finite automaton.
type DFA struct {
	q     int
	q0    int
	final map[int]struct{}
	sigma *alphabet.Alphabet

	// delta[state][symbolIndex] is InvalidState when undefined.
	delta [][]int
}

// New constructs a DFA with every transition initially undefined.
// sigma has no special meaning for epsilon here: a DFA alphabet never needs
// to contain alphabet.Epsilon, and '&' (if present) is treated as an
// ordinary symbol.
func New(q, q0 int, final []int, sigma []byte) (*DFA, error) {
	if q < 0 {
		return nil, fmt.Errorf("%w: Q must be non-negative", ErrInvalidConfig)
	}
	if q0 < 0 || q0 > q {
		return nil, fmt.Errorf("%w: q0 out of range [0, Q]", ErrInvalidConfig)
	}
	if len(final) == 0 {
		return nil, fmt.Errorf("%w: at least one final state is required", ErrInvalidConfig)
	}

	a, err := alphabet.New(sigma)
	if err != nil {
		return nil, fmt.Errorf("dfa.New: %w", err)
	}

	finalSet := make(map[int]struct{}, len(final))
	for _, f := range final {
		if f < 0 || f > q {
			return nil, fmt.Errorf("%w: final state %d out of range [0, Q]", ErrInvalidConfig, f)
		}
		finalSet[f] = struct{}{}
	}

	delta := make([][]int, q+1)
	for i := range delta {
		delta[i] = make([]int, a.Len())
		for j := range delta[i] {
			delta[i][j] = InvalidState
		}
	}

	return &DFA{q: q, q0: q0, final: finalSet, sigma: a, delta: delta}, nil
}

// Q returns the greatest state number.
func (d *DFA) Q() int { return d.q }

// Initial returns the (sole) initial state.
func (d *DFA) Initial() int { return d.q0 }

// IsFinal reports whether q is a final state.
func (d *DFA) IsFinal(q int) bool {
	_, ok := d.final[q]
	return ok
}

// Final returns the final states in ascending order.
func (d *DFA) Final() []int {
	out := make([]int, 0, len(d.final))
	for f := range d.final {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// Alphabet returns the automaton's alphabet.
func (d *DFA) Alphabet() *alphabet.Alphabet { return d.sigma }

// AddTransition sets Delta(q1, c) = q2, overwriting any previous value.
func (d *DFA) AddTransition(q1 int, c byte, q2 int) error {
	if q1 < 0 || q1 > d.q {
		return fmt.Errorf("%w: q1 %d out of range", ErrInvalidConfig, q1)
	}
	if q2 < 0 || q2 > d.q {
		return fmt.Errorf("%w: q2 %d out of range", ErrInvalidConfig, q2)
	}
	idx := d.sigma.IndexOf(c)
	if idx == alphabet.InvalidIndex {
		return fmt.Errorf("%w: symbol %q not in alphabet", ErrInvalidConfig, rune(c))
	}

	d.delta[q1][idx] = q2
	return nil
}

// Delta returns Delta(q1, c), or InvalidState if undefined or c is outside
// the alphabet.
func (d *DFA) Delta(q1 int, c byte) int {
	idx := d.sigma.IndexOf(c)
	if idx == alphabet.InvalidIndex || q1 < 0 || q1 > d.q {
		return InvalidState
	}
	return d.delta[q1][idx]
}

// Recognize reports whether s is accepted: starting from the initial state,
// every byte of s must have a defined transition (an undefined transition,
// or a byte outside the alphabet, rejects immediately), and the state
// reached after consuming all of s must be final.
func (d *DFA) Recognize(s string) bool {
	q := d.q0

	for i := 0; i < len(s); i++ {
		q = d.Delta(q, s[i])
		if q == InvalidState {
			return false
		}
	}

	return d.IsFinal(q)
}

// String returns a short debug summary of the automaton.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{Q=%d, q0=%d, F=%v, Sigma=%q}", d.q, d.q0, d.Final(), d.sigma.Sigma())
}
