package nfa

import (
	"github.com/arelion/fsarex/alphabet"
)

// Builder incrementally constructs a single NFA fragment: a fresh dense
// state numbering, one designated start state, and a set of accepting
// states. It exists so the combinators in combinators.go can build a
// Thompson fragment state-by-state without needing to know the final Q
// upfront (unlike New, which requires the caller to already know Q).
type Builder struct {
	nextState int
	trans     map[int]map[byte][]int
	start     int
	accept    []int
	symbols   map[byte]struct{}
}

// NewBuilder returns an empty Builder with no states.
func NewBuilder() *Builder {
	return &Builder{
		trans:   make(map[int]map[byte][]int),
		symbols: make(map[byte]struct{}),
	}
}

// AddState allocates and returns a fresh state number.
func (b *Builder) AddState() int {
	id := b.nextState
	b.nextState++
	return id
}

// AddTransition records a transition q1 --c--> q2. c may be alphabet.Epsilon.
func (b *Builder) AddTransition(q1 int, c byte, q2 int) {
	if b.trans[q1] == nil {
		b.trans[q1] = make(map[byte][]int)
	}
	b.trans[q1][c] = append(b.trans[q1][c], q2)
	if c != alphabet.Epsilon {
		b.symbols[c] = struct{}{}
	}
}

// SetStart designates q as the fragment's unique start state.
func (b *Builder) SetStart(q int) {
	b.start = q
}

// SetAccept designates the fragment's accepting states, replacing any
// previously set accepting states.
func (b *Builder) SetAccept(qs ...int) {
	b.accept = append([]int(nil), qs...)
}

// Build finalizes the fragment into an NFA over the given non-epsilon
// alphabet. Every symbol actually used as a transition label must appear in
// sigma (NFA.AddTransition below rejects it otherwise with an
// ErrUnknownSymbol error).
func (b *Builder) Build(sigma []byte) (*NFA, error) {
	n, err := New(b.nextState-1, []int{b.start}, b.accept, sigma)
	if err != nil {
		return nil, err
	}

	for q1, byC := range b.trans {
		for c, targets := range byC {
			for _, q2 := range targets {
				if err := n.AddTransition(q1, c, q2); err != nil {
					return nil, err
				}
			}
		}
	}

	return n, nil
}
