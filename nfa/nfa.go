package nfa

import (
	"fmt"

	"github.com/arelion/fsarex/alphabet"
	"github.com/arelion/fsarex/internal/stateset"
)

// StateID uniquely identifies an NFA state. States are numbered 0..Q.
type StateID int

// InvalidState represents an absent or invalid state reference.
const InvalidState StateID = -1

// NFA is a Thompson-construction non-deterministic finite automaton.
//
// States are the dense range [0, Q]. Delta(q, c) is the (possibly empty) set
// of states reachable from q by consuming symbol c, including Epsilon moves
// when c is alphabet.Epsilon.
type NFA struct {
	q     int
	i     *stateset.Set
	f     *stateset.Set
	sigma *alphabet.Alphabet

	// delta[q][symbolIndex] is nil when Delta(q, symbol) is empty.
	delta [][]*stateset.Set
}

// New constructs an NFA from explicit state sets.
//
// sigma need not contain alphabet.Epsilon; if it is absent, New prepends it,
// since every NFA alphabet implicitly supports the empty-word symbol.
func New(q int, initial, final []int, sigma []byte) (*NFA, error) {
	if q < 0 {
		return nil, &BuildError{Message: "Q must be non-negative", StateID: InvalidState}
	}
	if len(initial) == 0 {
		return nil, &BuildError{Message: "at least one initial state is required", StateID: InvalidState}
	}
	if len(final) == 0 {
		return nil, &BuildError{Message: "at least one final state is required", StateID: InvalidState}
	}

	a, err := alphabet.NewWithEpsilon(sigma)
	if err != nil {
		return nil, fmt.Errorf("nfa.New: %w", err)
	}

	iSet := stateset.NewFrom(initial)
	fSet := stateset.NewFrom(final)
	for _, s := range append(append([]int{}, iSet.Values()...), fSet.Values()...) {
		if s < 0 || s > q {
			return nil, &BuildError{Message: "state out of range [0, Q]", StateID: StateID(s)}
		}
	}

	delta := make([][]*stateset.Set, q+1)
	for i := range delta {
		delta[i] = make([]*stateset.Set, a.Len())
	}

	return &NFA{q: q, i: iSet, f: fSet, sigma: a, delta: delta}, nil
}

// Q returns the greatest state number.
func (n *NFA) Q() int { return n.q }

// Initial returns the initial states, sorted and duplicate-free.
func (n *NFA) Initial() []int { return n.i.Values() }

// Final returns the final (accepting) states, sorted and duplicate-free.
func (n *NFA) Final() []int { return n.f.Values() }

// Alphabet returns the automaton's alphabet, including Epsilon.
func (n *NFA) Alphabet() *alphabet.Alphabet { return n.sigma }

// IsFinal reports whether q is a final state.
func (n *NFA) IsFinal(q int) bool {
	return n.f.Contains(q)
}

// AddTransition adds q2 to Delta(q1, c), keeping the target set sorted and
// duplicate-free.
func (n *NFA) AddTransition(q1 int, c byte, q2 int) error {
	if q1 < 0 || q1 > n.q {
		return &BuildError{Message: "q1 out of range", StateID: StateID(q1)}
	}
	if q2 < 0 || q2 > n.q {
		return &BuildError{Message: "q2 out of range", StateID: StateID(q2)}
	}
	idx := n.sigma.IndexOf(c)
	if idx == alphabet.InvalidIndex {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, rune(c))
	}

	if n.delta[q1][idx] == nil {
		n.delta[q1][idx] = stateset.New()
	}
	n.delta[q1][idx].Push(q2)
	return nil
}

// Delta returns the set of states reachable from q1 by consuming c.
// The returned set is empty (never nil) if there is no such transition.
func (n *NFA) Delta(q1 int, c byte) *stateset.Set {
	idx := n.sigma.IndexOf(c)
	if idx == alphabet.InvalidIndex || q1 < 0 || q1 > n.q {
		return stateset.New()
	}
	if s := n.delta[q1][idx]; s != nil {
		return s
	}
	return stateset.New()
}

// EpsilonClosure computes the epsilon-closure of the state set r: the
// smallest superset of r closed under Epsilon transitions.
//
// It follows the worklist algorithm: states newly added to the result are
// pushed onto a stack, and for each popped state its epsilon-successors are
// unioned in, pushing any state that was newly added.
func (n *NFA) EpsilonClosure(r *stateset.Set) *stateset.Set {
	closure := r.Clone()
	work := stateset.NewStackFrom(closure.Values())

	for !work.IsEmpty() {
		q := work.Pop()
		for _, q1 := range n.Delta(q, alphabet.Epsilon).Values() {
			if closure.Push(q1) {
				work.Push(q1)
			}
		}
	}

	return closure
}

// Recognize reports whether s is accepted by the NFA.
//
// The current configuration starts as the epsilon-closure of the initial
// states; for each byte of s the configuration is replaced by the union of
// Delta(q, c) over every q in the configuration, re-closed under Epsilon.
// s is accepted if the final configuration intersects the final states. A
// literal Epsilon byte in s is rejected outright: it must never be read as
// invoking an epsilon move.
func (n *NFA) Recognize(s string) bool {
	r := n.EpsilonClosure(stateset.NewFrom(n.Initial()))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == alphabet.Epsilon {
			return false
		}
		next := stateset.New()
		for _, q := range r.Values() {
			next = stateset.Union(next, n.Delta(q, c))
		}
		r = n.EpsilonClosure(next)
	}

	return !stateset.Disjoint(r, stateset.NewFrom(n.Final()))
}

// edge is a single (from, symbol, to) transition, used internally when
// combinators renumber and merge the states of their operands.
type edge struct {
	from int
	sym  byte
	to   int
}

// edges returns every transition in the automaton, including Epsilon ones.
func (n *NFA) edges() []edge {
	var out []edge
	sigma := n.sigma.Sigma()
	for q1 := 0; q1 <= n.q; q1++ {
		for idx, targets := range n.delta[q1] {
			if targets == nil {
				continue
			}
			for _, q2 := range targets.Values() {
				out = append(out, edge{from: q1, sym: sigma[idx], to: q2})
			}
		}
	}
	return out
}

// String returns a short debug summary of the automaton.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{Q=%d, I=%v, F=%v, Sigma=%q}", n.q, n.Initial(), n.Final(), n.sigma.Sigma())
}
