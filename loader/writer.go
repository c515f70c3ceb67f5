package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arelion/fsarex/alphabet"
	"github.com/arelion/fsarex/dfa"
	"github.com/arelion/fsarex/nfa"
)

// WriteNFA serializes n back to the description format LoadNFA understands.
// Used in tests to assert loader round-trip fidelity; not exposed through
// any command-line tool.
func WriteNFA(w io.Writer, n *nfa.NFA) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, n.Q())
	writeIntSet(bw, n.Initial())
	writeIntSet(bw, n.Final())

	sigma := withoutEpsilon(n.Alphabet().Sigma())
	fmt.Fprintln(bw, string(sigma))

	for q1 := 0; q1 <= n.Q(); q1++ {
		for _, c := range n.Alphabet().Sigma() {
			for _, q2 := range n.Delta(q1, c).Values() {
				fmt.Fprintf(bw, "%d %c %d\n", q1, c, q2)
			}
		}
	}

	return bw.Flush()
}

// WriteDFA serializes d back to the description format LoadDFA understands.
func WriteDFA(w io.Writer, d *dfa.DFA) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, d.Q())
	fmt.Fprintln(bw, d.Initial())
	writeIntSet(bw, d.Final())
	fmt.Fprintln(bw, string(d.Alphabet().Sigma()))

	for q1 := 0; q1 <= d.Q(); q1++ {
		for _, c := range d.Alphabet().Sigma() {
			if q2 := d.Delta(q1, c); q2 != dfa.InvalidState {
				fmt.Fprintf(bw, "%d %c %d\n", q1, c, q2)
			}
		}
	}

	return bw.Flush()
}

func writeIntSet(w *bufio.Writer, xs []int) {
	fmt.Fprintln(w, len(xs))
	for i, x := range xs {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, x)
	}
	fmt.Fprintln(w)
}

func withoutEpsilon(sigma []byte) []byte {
	out := make([]byte, 0, len(sigma))
	for _, c := range sigma {
		if c != alphabet.Epsilon {
			out = append(out, c)
		}
	}
	return out
}
