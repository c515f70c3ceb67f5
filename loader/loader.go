// Package loader reads and writes the textual automaton description format
// shared by nfa.NFA and dfa.DFA.
//
// NFA descriptions:
//
//	Q
//	lenI
//	I[0] I[1] ... I[lenI-1]
//	lenF
//	F[0] F[1] ... F[lenF-1]
//	Sigma
//	q1 c q2
//	q1 c q2
//	...
//
// DFA descriptions replace the lenI/I pair with a single bare q0 line, since
// a DFA has exactly one initial state and there is nothing to count:
//
//	Q
//	q0
//	lenF
//	F[0] F[1] ... F[lenF-1]
//	Sigma
//	q1 c q2
//	...
//
// Unlike the command-line tools this format was originally read by, a
// malformed file is reported as an error rather than aborting the process.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arelion/fsarex/dfa"
	"github.com/arelion/fsarex/nfa"
)

// ErrMalformed indicates the input does not conform to the description format.
var ErrMalformed = errors.New("loader: malformed automaton description")

// reader wraps a bufio.Scanner with line counting for error messages, and
// canonicalizes CRLF line endings and rejects embedded control characters.
type reader struct {
	scanner *bufio.Scanner
	line    int
}

func newReader(r io.Reader) *reader {
	return &reader{scanner: bufio.NewScanner(r)}
}

func (r *reader) next() (string, bool, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", false, errors.Wrap(err, "loader: reading line")
		}
		return "", false, nil
	}
	r.line++

	line := strings.TrimSuffix(r.scanner.Text(), "\r")
	for i := 0; i < len(line); i++ {
		if line[i] < 0x20 && line[i] != '\t' {
			return "", false, r.errorf("line contains a control character")
		}
	}

	return line, true, nil
}

func (r *reader) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at line %d: %s", ErrMalformed, r.line, fmt.Sprintf(format, args...))
}

func (r *reader) requireLine() (string, error) {
	line, ok, err := r.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", r.errorf("unexpected end of file")
	}
	return line, nil
}

func (r *reader) int(strictlyPositive bool) (int, error) {
	line, err := r.requireLine()
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, r.errorf("expected an integer, got %q", line)
	}
	if n < 0 || (strictlyPositive && n == 0) {
		return 0, r.errorf("expected a %s integer, got %d", positivity(strictlyPositive), n)
	}
	return n, nil
}

func positivity(strict bool) string {
	if strict {
		return "strictly positive"
	}
	return "positive"
}

func (r *reader) intSet() ([]int, error) {
	count, err := r.int(true)
	if err != nil {
		return nil, err
	}

	line, err := r.requireLine()
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(line)
	if len(fields) != count {
		return nil, r.errorf("expected %d state(s), got %d", count, len(fields))
	}

	out := make([]int, count)
	for i, f := range fields {
		n, convErr := strconv.Atoi(f)
		if convErr != nil || n < 0 {
			return nil, r.errorf("expected a non-negative state, got %q", f)
		}
		out[i] = n
	}
	return out, nil
}

func (r *reader) sigmaLine() ([]byte, error) {
	line, err := r.requireLine()
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, r.errorf("expected a non-empty alphabet")
	}
	return []byte(line), nil
}

type transition struct {
	q1, q2 int
	c      byte
}

func (r *reader) transition() (transition, bool, error) {
	line, ok, err := r.next()
	if err != nil || !ok {
		return transition{}, false, err
	}

	fields := strings.Fields(line)
	if len(fields) != 3 {
		return transition{}, false, r.errorf("expected a transition %q, got %q", "q1 c q2", line)
	}

	q1, err1 := strconv.Atoi(fields[0])
	q2, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || len(fields[1]) != 1 {
		return transition{}, false, r.errorf("malformed transition %q", line)
	}

	return transition{q1: q1, c: fields[1][0], q2: q2}, true, nil
}

// LoadNFA parses an NFA description from r.
func LoadNFA(r io.Reader) (*nfa.NFA, error) {
	rd := newReader(r)

	q, err := rd.int(false)
	if err != nil {
		return nil, err
	}
	initial, err := rd.intSet()
	if err != nil {
		return nil, err
	}
	final, err := rd.intSet()
	if err != nil {
		return nil, err
	}
	sigma, err := rd.sigmaLine()
	if err != nil {
		return nil, err
	}

	n, err := nfa.New(q, initial, final, sigma)
	if err != nil {
		return nil, errors.Wrap(err, "loader: building NFA")
	}

	for {
		t, ok, err := rd.transition()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := n.AddTransition(t.q1, t.c, t.q2); err != nil {
			return nil, rd.errorf("invalid transition %d %q %d: %v", t.q1, rune(t.c), t.q2, err)
		}
	}

	return n, nil
}

// LoadDFA parses a DFA description from r. Unlike LoadNFA, the initial state
// is a single bare integer line (q0), not a count-then-list pair: a DFA has
// exactly one initial state by construction, so there is nothing to count.
func LoadDFA(r io.Reader) (*dfa.DFA, error) {
	rd := newReader(r)

	q, err := rd.int(false)
	if err != nil {
		return nil, err
	}
	q0, err := rd.int(false)
	if err != nil {
		return nil, err
	}
	final, err := rd.intSet()
	if err != nil {
		return nil, err
	}
	sigma, err := rd.sigmaLine()
	if err != nil {
		return nil, err
	}

	d, err := dfa.New(q, q0, final, sigma)
	if err != nil {
		return nil, errors.Wrap(err, "loader: building DFA")
	}

	for {
		t, ok, err := rd.transition()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := d.AddTransition(t.q1, t.c, t.q2); err != nil {
			return nil, rd.errorf("invalid transition %d %q %d: %v", t.q1, rune(t.c), t.q2, err)
		}
	}

	return d, nil
}
