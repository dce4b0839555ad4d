// Package report prints the human-facing banner, pre-run summary and final
// statistics. Everything here goes to the diagnostics stream, never to the
// dictionary itself.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"rustoveva/internal/engine"
	"rustoveva/internal/runutil"
	"rustoveva/internal/writers"
)

// Banner prints the tool header.
func Banner(w io.Writer, version string) {
	fmt.Fprintf(w, "rustoveva v%s\n", version)
	fmt.Fprintln(w, "---  Fast and versatile name generator for custom brute force attacks  ---")
	fmt.Fprintln(w)
}

// Plan describes a run before it starts.
type Plan struct {
	Words    int
	Minimal  bool
	Symbols  engine.SymbolSet
	Window   writers.Window
	Estimate engine.Size
}

// Summary prints the pre-run overview.
func Summary(w io.Writer, p Plan) {
	mode := "full"
	if p.Minimal {
		mode = "minimal"
	}
	fmt.Fprintf(w, "Number of input words: \t%d\n", p.Words)
	fmt.Fprintf(w, "Mode: \t\t\t%s (symbols %q)\n", mode, p.Symbols.String())
	fmt.Fprintf(w, "Estimated candidates: \t%s\n", humanize.Comma(int64(p.Estimate.Candidates)))
	fmt.Fprintf(w, "Estimated size: \t%s\n", humanize.IBytes(p.Estimate.Bytes))
	if p.Window.Bounded() {
		fmt.Fprintf(w, "Only passwords %s will be generated.\n", runutil.DescribeWindow(p.Window))
	}
	fmt.Fprintln(w)
}

// Result describes a finished run.
type Result struct {
	Lines   uint64
	Bytes   uint64
	Elapsed time.Duration
	// Path is the absolute output path; empty for stdout or split mode.
	Path  string
	Split bool
}

// Final prints the closing statistics.
func Final(w io.Writer, r Result) {
	fmt.Fprintln(w)
	if r.Split {
		fmt.Fprintf(w, "Words: \t%s (across per-word files)\n", humanize.Comma(int64(r.Lines)))
	} else {
		fmt.Fprintf(w, "Words: \t%s\n", humanize.Comma(int64(r.Lines)))
	}
	fmt.Fprintf(w, "Size: \t%s\n", humanize.IBytes(r.Bytes))
	fmt.Fprintf(w, "Total time: \t\t%s\n", runutil.FormatClock(r.Elapsed))
	fmt.Fprintln(w)
}

// Samples prints a block of sample candidates.
func Samples(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, "Some of the words generated:")
	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}
