// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"rustoveva/internal/clibase"
	"rustoveva/internal/cliutil"
	"rustoveva/internal/config"
	"rustoveva/internal/engine"
	"rustoveva/internal/runutil"
	"rustoveva/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	// Generation
	Minimal    bool
	Range      string
	SymbolList string // raw --symbols

	// Derived during validation.
	Window  writers.Window
	Symbols engine.SymbolSet
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] -o dict.txt -i names.txt\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] -o dict.txt -p \"ana bob\"\n", name)

		_, _ = fmt.Fprintln(out, "\nGeneration:")
		_, _ = fmt.Fprintf(out, "  -m, --minimal               Skip reversed forms, use symbols %q [%s]\n", engine.MinimalSymbols.String(), def("minimal"))
		_, _ = fmt.Fprintln(out, "  -r, --range MIN-MAX         Only keep candidates of MIN..MAX bytes, e.g. 8-12")
		_, _ = fmt.Fprintf(out, "      --symbols string        Custom separator symbols [%q full, %q minimal]\n", engine.FullSymbols.String(), engine.MinimalSymbols.String())
	})
	return fs
}

// PrintExamples prints a short quickstart.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "rustoveva", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Dictionary from a list of names, 8 to 12 characters:")
		_, _ = fmt.Fprintln(w, "  rustoveva -i names.txt -o dict.txt -r 8-12")
		_, _ = fmt.Fprintln(w, "\nInline words, minimal mode, one file per word:")
		_, _ = fmt.Fprintln(w, "  rustoveva -p \"maria jose\" -o dict.txt -m -s")
		_, _ = fmt.Fprintln(w, "\nStream to another tool:")
		_, _ = fmt.Fprintln(w, "  rustoveva -p bob -o - -q | hashcat ...")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
// env provides defaults that flags override.
func ParseArgs(fs *flag.FlagSet, argv []string, env config.Env) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common, env.Sample)

	fs.BoolVar(&o.Minimal, "minimal", false, "minimal mode: fewer combinations per word [false]")
	fs.BoolVar(&o.Minimal, "m", false, "alias of --minimal")
	fs.StringVar(&o.Range, "range", "", "length range MIN-MAX, e.g. 8-12")
	fs.StringVar(&o.Range, "r", "", "alias of --range")
	fs.StringVar(&o.SymbolList, "symbols", "", "custom separator symbols")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(&o.Common, posArgs); err != nil {
		return o, err
	}

	win, err := runutil.ParseRange(o.Range)
	if err != nil {
		return o, err
	}
	o.Window = win

	if o.SymbolList != "" {
		if o.Symbols, err = engine.ParseSymbols(o.SymbolList); err != nil {
			return o, fmt.Errorf("--symbols: %w", err)
		}
	} else {
		o.Symbols = engine.PresetSymbols(o.Minimal)
	}
	return o, nil
}
