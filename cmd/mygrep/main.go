// Command mygrep reports whether a regular expression matches a given
// word.
//
// Usage:
//
//	mygrep [-v] [-q] <regex> <word>
//
// Flags:
//
//	-v, --verbose   also log the compiled NFA's summary (Q, initial and
//	                final states, alphabet) to stderr; does not affect the
//	                exit code or the accept/reject line
//	-q, --quiet     suppress the "<word>" est acceptée/rejetée line; the
//	                exit code does not tell acceptance from rejection
//
// Exit codes:
//
//	0   the program ran to completion, whether or not the word was accepted
//	1   argument count error, lexical error, or syntax error
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/arelion/fsarex"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("mygrep", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "also print the compiled automaton to stderr")
	quiet := flags.BoolP("quiet", "q", false, `suppress the "<word>" est acceptée/rejetée line`)

	if err := flags.Parse(args); err != nil {
		logrus.WithError(err).Error("parsing flags")
		return exitError
	}

	rest := flags.Args()
	if len(rest) != 2 {
		fmt.Fprintf(os.Stderr, "usage: mygrep [-v] [-q] <regex> <word>\n")
		return exitError
	}

	pattern, word := rest[0], rest[1]

	p, err := fsarex.Compile(pattern)
	if err != nil {
		logrus.WithError(err).WithField("pattern", pattern).Error("compiling pattern")
		return exitError
	}

	if *verbose {
		logrus.Infof("compiled: %s", p)
	}

	accepted := p.MatchString(word)
	if !*quiet {
		if accepted {
			fmt.Printf("%q est acceptée\n", word)
		} else {
			fmt.Printf("%q est rejetée\n", word)
		}
	}

	return exitOK
}
