package report

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rustoveva/internal/engine"
	"rustoveva/internal/writers"
)

func TestSummary(t *testing.T) {
	var b bytes.Buffer
	Summary(&b, Plan{
		Words:    2,
		Minimal:  true,
		Symbols:  engine.MinimalSymbols,
		Window:   writers.Window{Min: 8, Max: 12},
		Estimate: engine.Size{Candidates: 1234567, Bytes: 3 << 20},
	})
	out := b.String()
	assert.Contains(t, out, "Number of input words: \t2")
	assert.Contains(t, out, "minimal")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "3.0 MiB")
	assert.Contains(t, out, "between 8 and 12 characters")
}

func TestSummaryUnboundedHasNoRangeLine(t *testing.T) {
	var b bytes.Buffer
	Summary(&b, Plan{Words: 1, Symbols: engine.FullSymbols, Window: writers.Unbounded})
	assert.NotContains(t, b.String(), "Only passwords")
}

func TestFinal(t *testing.T) {
	var b bytes.Buffer
	Final(&b, Result{Lines: 10000, Bytes: 2048, Elapsed: 61 * time.Second})
	out := b.String()
	assert.Contains(t, out, "Words: \t10,000\n")
	assert.Contains(t, out, "Size: \t2.0 KiB")
	assert.Contains(t, out, "0h 1m 1s")
}

func TestSampleSmallInputReturnsAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	got, err := Sample(strings.NewReader("a\nb\nc\n"), 64, rng)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestSampleBounded(t *testing.T) {
	var in strings.Builder
	for i := 0; i < 1000; i++ {
		in.WriteString("line\n")
	}
	rng := rand.New(rand.NewPCG(3, 4))
	got, err := Sample(strings.NewReader(in.String()), 5, rng)
	require.NoError(t, err)
	require.Len(t, got, 5)

	none, err := Sample(strings.NewReader(in.String()), 0, rng)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSamples(t *testing.T) {
	var b bytes.Buffer
	Samples(&b, nil)
	require.Empty(t, b.String())
	Samples(&b, []string{"B0b-07"})
	require.Contains(t, b.String(), "B0b-07")
}
