// Package alphabet provides the fixed-range symbol alphabet shared by the
// nfa and dfa packages.
//
// Every automaton in this module draws its transition symbols from a single
// ASCII window [First, Last]; an Alphabet is a validated subset of that
// window, together with a dense index so transition tables can be addressed
// as Q x len(Sigma) arrays instead of Q x 256 ones.
package alphabet

import "fmt"

const (
	// First is the lowest byte value usable in any alphabet ('&').
	First byte = 38

	// Last is the highest byte value usable in any alphabet ('z').
	Last byte = 122

	// SymbolCount is the number of distinct byte values in [First, Last].
	SymbolCount = int(Last-First) + 1

	// Epsilon is the only symbol standing for the zero-length word.
	// It is only meaningful inside an NFA alphabet.
	Epsilon byte = '&'

	// InvalidIndex marks a byte with no entry in an Alphabet.
	InvalidIndex = -1
)

// Error is returned when a requested alphabet is malformed.
type Error struct {
	Symbol byte
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("alphabet: symbol %q: %s", rune(e.Symbol), e.Reason)
}

// Alphabet maps each byte in [First, Last] to its index within an ordered
// symbol string Sigma, or to InvalidIndex if the byte is not part of Sigma.
type Alphabet struct {
	index [SymbolCount]int
	sigma []byte
}

// New validates sigma and builds an Alphabet over it.
// It rejects symbols outside [First, Last] and duplicate symbols.
func New(sigma []byte) (*Alphabet, error) {
	a := &Alphabet{sigma: append([]byte(nil), sigma...)}
	for i := range a.index {
		a.index[i] = InvalidIndex
	}

	for i, c := range sigma {
		if c < First || c > Last {
			return nil, &Error{Symbol: c, Reason: "outside the supported symbol range"}
		}

		offset := c - First
		if a.index[offset] != InvalidIndex {
			return nil, &Error{Symbol: c, Reason: "duplicated symbol"}
		}

		a.index[offset] = i
	}

	return a, nil
}

// NewWithEpsilon behaves like New, but prepends Epsilon to sigma first when
// it is not already present. This is the alphabet constructor NFAs use: an
// NFA's alphabet always contains epsilon, whether or not the caller supplied
// it explicitly.
func NewWithEpsilon(sigma []byte) (*Alphabet, error) {
	for _, c := range sigma {
		if c == Epsilon {
			return New(sigma)
		}
	}

	withEps := make([]byte, 0, len(sigma)+1)
	withEps = append(withEps, Epsilon)
	withEps = append(withEps, sigma...)
	return New(withEps)
}

// Len returns the number of symbols in the alphabet (len(Sigma)).
func (a *Alphabet) Len() int {
	return len(a.sigma)
}

// Sigma returns the alphabet's symbols in their original order.
// Callers must not mutate the returned slice.
func (a *Alphabet) Sigma() []byte {
	return a.sigma
}

// IndexOf returns the index of symbol c within Sigma, or InvalidIndex if c is
// not part of this alphabet.
func (a *Alphabet) IndexOf(c byte) int {
	if c < First || c > Last {
		return InvalidIndex
	}
	return a.index[c-First]
}

// Contains reports whether c is part of this alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.IndexOf(c) != InvalidIndex
}

// EpsilonIndex returns the index of Epsilon within Sigma, or InvalidIndex if
// this alphabet has no epsilon symbol. A DFA alphabet that lists '&' gets its
// index here too, even though the dfa package treats it as an ordinary symbol.
func (a *Alphabet) EpsilonIndex() int {
	return a.IndexOf(Epsilon)
}

// Equal reports whether a and b contain exactly the same symbols in the
// same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if len(a.sigma) != len(b.sigma) {
		return false
	}
	for i, c := range a.sigma {
		if b.sigma[i] != c {
			return false
		}
	}
	return true
}
