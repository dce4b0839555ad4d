// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"rustoveva/internal/cliutil"
	"rustoveva/internal/writers"
)

// Common holds the input/output flags of the CLI.
type Common struct {
	// Input
	InputFiles []string
	Words      string

	// Output
	OutputFile string
	Split      bool
	Sample     int

	// Misc
	Verbose bool
	Debug   bool
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --input-file/-i)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Register wires shared flags onto fs. sample is the env-derived default for
// --sample.
func Register(fs *flag.FlagSet, c *Common, sample int) {
	// Input
	inVal := &sliceValue{dst: &c.InputFiles}
	fs.Var(inVal, "input-file", "file(s) with base words (repeatable, globs allowed)")
	fs.Var(inVal, "i", "alias of --input-file")
	fs.StringVar(&c.Words, "words", "", "quoted list of space-separated words")
	fs.StringVar(&c.Words, "p", "", "alias of --words")

	// Output
	fs.StringVar(&c.OutputFile, "output-file", "", "output dictionary ('-' = stdout)")
	fs.StringVar(&c.OutputFile, "o", "", "alias of --output-file")
	fs.BoolVar(&c.Split, "split", false, "one output file per input word [false]")
	fs.BoolVar(&c.Split, "s", false, "alias of --split")
	fs.IntVar(&c.Sample, "sample", sample, fmt.Sprintf("sample lines shown after generation (0=off) [%d]", sample))

	// Misc
	fs.BoolVar(&c.Verbose, "verbose", false, "print every generated candidate [false]")
	fs.BoolVar(&c.Verbose, "v", false, "alias of --verbose")
	fs.BoolVar(&c.Debug, "debug", false, "debug mode (implies --verbose) [false]")
	fs.BoolVar(&c.Debug, "d", false, "alias of --debug")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress banner and status lines [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals into input files, then runs shared validation.
func AfterParse(c *Common, posArgs []string) error {
	if files := append(c.InputFiles, posArgs...); len(files) > 0 {
		exp, err := cliutil.ExpandPositionals(files)
		if err != nil {
			return err
		}
		c.InputFiles = exp
	}
	if c.Debug {
		c.Verbose = true
	}
	return Validate(c)
}

// Validate applies the shared CLI invariants.
func Validate(c *Common) error {
	usingFiles := len(c.InputFiles) > 0
	usingList := c.Words != ""
	switch {
	case usingFiles && usingList:
		return errors.New("only one input method is allowed: file or list")
	case !usingFiles && !usingList:
		return errors.New("provide --input-file (-i) or --words (-p)")
	}
	if c.OutputFile == "" {
		return errors.New("--output-file (-o) is required")
	}
	if c.Split && c.OutputFile == writers.StdoutPath {
		return errors.New("--split needs a file name, not stdout")
	}
	if c.Sample < 0 {
		return errors.New("--sample must be ≥ 0")
	}
	return nil
}
