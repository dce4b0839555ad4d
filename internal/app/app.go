// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"time"

	"rustoveva/internal/cli"
	"rustoveva/internal/clibase"
	"rustoveva/internal/cmdutil"
	"rustoveva/internal/config"
	"rustoveva/internal/engine"
	"rustoveva/internal/report"
	"rustoveva/internal/version"
	"rustoveva/internal/wordlist"
	"rustoveva/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// RunContext runs the CLI. Candidates go to the output file (or stdout with
// "-o -"); banner, status lines and traces go to stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	env, err := config.Load()
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}

	fs := cli.NewFlagSet("rustoveva")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}, env)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv, env)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flushCode(outw, stderr, ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "rustoveva version %s\n", version.Version)
		return flushCode(outw, stderr, ExitOK)
	}

	return run(parent, opts, env, stdout, stderr)
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, o cli.Options, env config.Env, stdout, stderr io.Writer) int {
	quiet := o.Quiet

	var words []string
	if o.Words != "" {
		words = wordlist.FromText(o.Words)
	} else {
		var err error
		if words, err = wordlist.FromFiles(o.InputFiles); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return ExitUsage
		}
	}
	if len(words) == 0 {
		cmdutil.Errorf(stderr, "no input words")
		return ExitUsage
	}

	if path, taken := outputTaken(o, words); taken {
		cmdutil.Errorf(stderr, "Output file %s already exists", path)
		return ExitUsage
	}

	if !quiet && !env.NoBanner {
		report.Banner(stderr, version.Version)
	}
	cmdutil.OKf(stderr, quiet, "Creating dictionary")

	var est engine.Size
	for _, w := range words {
		est.Add(engine.NewPlan(w, o.Minimal, o.Symbols).Estimate(o.Window.Contains))
	}
	if !quiet {
		report.Summary(stderr, report.Plan{
			Words: len(words), Minimal: o.Minimal, Symbols: o.Symbols,
			Window: o.Window, Estimate: est,
		})
	}

	if env.StartDelay > 0 {
		select {
		case <-time.After(env.StartDelay):
		case <-ctx.Done():
			return ExitCancelled
		}
	}

	cfg := engine.Config{Minimal: o.Minimal, Symbols: o.Symbols}
	if o.Verbose {
		cfg.Trace = stderr
	}

	start := time.Now()
	var (
		res    report.Result
		runErr error
	)
	if o.Split {
		res, runErr = runSplit(ctx, o, env, cfg, words, stderr)
	} else {
		res, runErr = runSingle(ctx, o, env, cfg, words, stdout, stderr)
	}
	res.Elapsed = time.Since(start)

	switch {
	case runErr == nil:
	case writers.IsBrokenPipe(runErr):
		return ExitOK
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		cmdutil.Warnf(stderr, quiet, "interrupted; output holds the words completed so far")
		return ExitCancelled
	case errors.Is(runErr, writers.ErrOutputExists):
		cmdutil.Errorf(stderr, "%v", runErr)
		return ExitUsage
	default:
		cmdutil.Errorf(stderr, "%v", runErr)
		return ExitIO
	}

	if quiet {
		return ExitOK
	}
	report.Final(stderr, res)
	if o.Split {
		cmdutil.OKf(stderr, false, "Files generated successfully")
		return ExitOK
	}
	if res.Path != "" {
		cmdutil.OKf(stderr, false, "File %s successfully generated", res.Path)
		if o.Sample > 0 {
			rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(res.Lines)))
			lines, err := report.SampleFile(res.Path, o.Sample, rng)
			if err != nil {
				cmdutil.Warnf(stderr, false, "%v", err)
			}
			fmt.Fprintln(stderr)
			report.Samples(stderr, lines)
		}
	}
	return ExitOK
}

// runSingle writes every word to one stream, sharing one engine and clock.
func runSingle(ctx context.Context, o cli.Options, env config.Env, cfg engine.Config, words []string, stdout, stderr io.Writer) (report.Result, error) {
	var (
		res  report.Result
		sink *writers.LineSink
	)
	if o.OutputFile == writers.StdoutPath {
		sink = writers.NewLineSink(stdout, o.Window, env.BufferSize())
	} else {
		var err error
		if sink, err = writers.OpenSink(o.OutputFile, o.Window, env.BufferSize()); err != nil {
			return res, err
		}
		if abs, err := filepath.Abs(o.OutputFile); err == nil {
			res.Path = abs
		} else {
			res.Path = o.OutputFile
		}
	}

	eng := engine.New(cfg, sink)
	_, err := cmdutil.RunWords(ctx, words, func(w string) error {
		cmdutil.OKf(stderr, o.Quiet, "Generating combinations for %s", w)
		return eng.Expand(w)
	})
	if cerr := sink.Close(); err == nil {
		err = cerr
	}
	res.Lines, res.Bytes = sink.Lines(), sink.Bytes()
	return res, err
}

// runSplit gives each word its own file, sink and engine.
func runSplit(ctx context.Context, o cli.Options, env config.Env, cfg engine.Config, words []string, stderr io.Writer) (report.Result, error) {
	res := report.Result{Split: true}
	_, err := cmdutil.RunWords(ctx, words, func(w string) error {
		sink, err := writers.OpenSink(writers.SplitPath(o.OutputFile, w), o.Window, env.BufferSize())
		if err != nil {
			return err
		}
		cmdutil.OKf(stderr, o.Quiet, "Generating combinations for %s", w)
		err = engine.New(cfg, sink).Expand(w)
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
		res.Lines += sink.Lines()
		res.Bytes += sink.Bytes()
		return err
	})
	return res, err
}

// outputTaken reports the first output path that already exists.
func outputTaken(o cli.Options, words []string) (string, bool) {
	if o.OutputFile == writers.StdoutPath {
		return "", false
	}
	if !o.Split {
		return o.OutputFile, writers.Exists(o.OutputFile)
	}
	for _, w := range words {
		if p := writers.SplitPath(o.OutputFile, w); writers.Exists(p) {
			return p, true
		}
	}
	return "", false
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}
