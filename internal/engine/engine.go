// internal/engine/engine.go
package engine

import (
	"fmt"
	"io"
	"time"
)

// Sink receives every candidate in order. It reports whether the candidate
// was kept (written); a non-nil error aborts the current word.
type Sink interface {
	Emit(candidate string) (bool, error)
}

// Config controls expansion.
type Config struct {
	Minimal bool
	// Symbols defaults to the preset for Minimal when nil.
	Symbols SymbolSet
	// Trace receives one line per written candidate when non-nil.
	Trace io.Writer
}

// Engine expands seed words into a Sink. It is not safe for concurrent use;
// give each output stream its own Engine.
type Engine struct {
	cfg   Config
	sink  Sink
	start time.Time
	now   func() time.Time
}

// New returns an Engine writing to sink. Its clock starts now.
func New(cfg Config, sink Sink) *Engine {
	if cfg.Symbols == nil {
		cfg.Symbols = PresetSymbols(cfg.Minimal)
	}
	e := &Engine{cfg: cfg, sink: sink, now: time.Now}
	e.start = e.now()
	return e
}

// Symbols returns the active symbol set.
func (e *Engine) Symbols() SymbolSet { return e.cfg.Symbols }

// Plan lays out the expansion of word under the engine's configuration.
func (e *Engine) Plan(word string) Plan {
	return NewPlan(word, e.cfg.Minimal, e.cfg.Symbols)
}

// Elapsed is the time since the engine was created.
func (e *Engine) Elapsed() time.Duration {
	return e.now().Sub(e.start)
}

// Expand emits every candidate of word to the sink, in plan order. It stops
// at the first sink error.
func (e *Engine) Expand(word string) error {
	p := e.Plan(word)
	e.trace(word)
	for _, st := range p.Steps {
		for c := range st.Family.Seq(st.Prefix) {
			kept, err := e.sink.Emit(c)
			if err != nil {
				return fmt.Errorf("expand %q: %w", word, err)
			}
			if kept {
				e.trace(c)
			}
		}
	}
	return nil
}

// trace is observational only; its write errors are ignored.
func (e *Engine) trace(s string) {
	if e.cfg.Trace == nil {
		return
	}
	_, _ = fmt.Fprintf(e.cfg.Trace, "\t[%d s]\tGenerating '%s'\n", int64(e.Elapsed()/time.Second), s)
}
