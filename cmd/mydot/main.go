// Command mydot renders one or more regular expressions as Graphviz images.
//
// Usage:
//
//	mydot [-o DIR] <pattern...>
//
// Each pattern is compiled and written as "<DIR>/param<n>.dot", numbered
// from 1, then rendered to "<DIR>/param<n>.png" via the `dot` binary.
// Flags:
//
//	-o, --outdir    output directory (default "out/png")
//	-n, --nfa-only  only write the .dot source; skip invoking `dot`
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/arelion/fsarex/dot"
	"github.com/arelion/fsarex/parser"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("mydot", pflag.ContinueOnError)
	outdir := flags.StringP("outdir", "o", "out/png", "output directory")
	nfaOnly := flags.BoolP("nfa-only", "n", false, "only write the .dot source; skip invoking dot")

	if err := flags.Parse(args); err != nil {
		logrus.WithError(err).Error("parsing flags")
		return 2
	}

	patterns := flags.Args()
	if len(patterns) == 0 {
		fmt.Fprintf(os.Stderr, "usage: mydot [-o DIR] <pattern...>\n")
		return 2
	}

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		logrus.WithError(err).Error("creating output directory")
		return 1
	}

	for i, pattern := range patterns {
		n, err := parser.Parse(pattern)
		if err != nil {
			logrus.WithError(err).WithField("pattern", pattern).Error("compiling pattern")
			return 1
		}

		base := filepath.Join(*outdir, fmt.Sprintf("param%d", i+1))
		dotPath := base + ".dot"

		f, err := os.Create(dotPath)
		if err != nil {
			logrus.WithError(err).WithField("path", dotPath).Error("creating dot file")
			return 1
		}
		writeErr := dot.WriteNFA(f, n)
		closeErr := f.Close()
		if writeErr != nil {
			logrus.WithError(writeErr).Error("writing dot source")
			return 1
		}
		if closeErr != nil {
			logrus.WithError(closeErr).Error("closing dot file")
			return 1
		}

		if *nfaOnly {
			continue
		}

		if err := dot.Render(dotPath, base+".png"); err != nil {
			logrus.WithError(err).Error("rendering png")
			return 1
		}
	}

	fmt.Printf("rendered %d pattern(s) to %s\n", len(patterns), *outdir)
	return 0
}
