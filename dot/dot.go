// Package dot renders NFA and DFA automata as Graphviz .dot source, and
// optionally shells out to the `dot` binary to produce an image.
package dot

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/arelion/fsarex/alphabet"
	"github.com/arelion/fsarex/dfa"
	"github.com/arelion/fsarex/nfa"
)

// epsilonGlyph is how the epsilon symbol is rendered on an edge label: the
// Unicode Greek letter, rather than the ASCII '&' used internally.
const epsilonGlyph = "ε"

// WriteNFA writes n as a Graphviz digraph to w: one invisible "start" node
// per initial state feeding an edge into it, double-circled final states,
// and one labeled edge per transition (epsilon rendered as "ε").
func WriteNFA(w io.Writer, n *nfa.NFA) error {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "\tlayout=dot;")
	fmt.Fprintln(w, "\trankdir=LR;")
	fmt.Fprintln(w, "\tnode [shape=circle];")
	fmt.Fprintln(w, "\tedge [arrowhead=open];")

	for _, q := range n.Final() {
		fmt.Fprintf(w, "\tq%d [shape=doublecircle];\n", q)
	}

	for i, q := range n.Initial() {
		fmt.Fprintf(w, "\tstart%d [shape=point,style=invis];\n", i)
		fmt.Fprintf(w, "\tstart%d -> q%d;\n", i, q)
	}

	sigma := n.Alphabet().Sigma()
	for q1 := 0; q1 <= n.Q(); q1++ {
		for _, c := range sigma {
			for _, q2 := range n.Delta(q1, c).Values() {
				fmt.Fprintf(w, "\tq%d -> q%d [label=%q];\n", q1, q2, label(c))
			}
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

// WriteDFA writes d as a Graphviz digraph to w, following the same
// conventions as WriteNFA (a DFA has exactly one initial state).
func WriteDFA(w io.Writer, d *dfa.DFA) error {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "\tlayout=dot;")
	fmt.Fprintln(w, "\trankdir=LR;")
	fmt.Fprintln(w, "\tnode [shape=circle];")
	fmt.Fprintln(w, "\tedge [arrowhead=open];")

	for _, q := range d.Final() {
		fmt.Fprintf(w, "\tq%d [shape=doublecircle];\n", q)
	}

	fmt.Fprintln(w, "\tstart0 [shape=point,style=invis];")
	fmt.Fprintf(w, "\tstart0 -> q%d;\n", d.Initial())

	sigma := d.Alphabet().Sigma()
	for q1 := 0; q1 <= d.Q(); q1++ {
		for _, c := range sigma {
			if q2 := d.Delta(q1, c); q2 != dfa.InvalidState {
				fmt.Fprintf(w, "\tq%d -> q%d [label=%q];\n", q1, q2, label(c))
			}
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

func label(c byte) string {
	if c == alphabet.Epsilon {
		return epsilonGlyph
	}
	return string(c)
}

// Render shells out to `dot -Tpng dotPath -o pngPath`, returning an error
// that wraps the underlying exec failure (including dot's stderr) on
// non-zero exit.
func Render(dotPath, pngPath string) error {
	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "dot: rendering %s failed: %s", dotPath, out)
	}
	return nil
}
