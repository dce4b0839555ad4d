// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples; the app prints
// them and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints the quickstart: a title, the tool's recipes from body
// and pointers to --help and the environment knobs.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s examples\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for every flag and the RUSTOVEVA_* environment variables.")
}
