// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"rustoveva/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage line, generation flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – name-based dictionary generator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input-file file       File(s) with base words (repeatable, doublestar globs)")
		fmt.Fprintln(out, "  -p, --words string          Quoted list of space-separated words")
		fmt.Fprintln(out, "      positional args         More input files or globs")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output-file file      Output dictionary, '-' for STDOUT [*]")
		fmt.Fprintf(out, "  -s, --split                 One file per word, named <word>_<output-file> [%s]\n", def("split"))
		fmt.Fprintf(out, "      --sample int            Sample lines shown after generation (0=off) [%s]\n", def("sample"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -v, --verbose               Print every generated candidate [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -d, --debug                 Debug mode, implies --verbose [%s]\n", def("debug"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress banner and status lines [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "      --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  RUSTOVEVA_BUFFER_KB         Write buffer size in KiB [64]")
		fmt.Fprintln(out, "  RUSTOVEVA_SAMPLE            Default for --sample [64]")
		fmt.Fprintln(out, "  RUSTOVEVA_START_DELAY       Pause after the summary, e.g. 2s [0s]")
		fmt.Fprintln(out, "  RUSTOVEVA_NO_BANNER         Suppress the banner [false]")
	}
}
