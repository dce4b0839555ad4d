package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"José":      "jose",
		"ÁLVARO":    "alvaro",
		"Conceição": "conceicao",
		"Ñandú":     "nandu",
		"bob":       "bob",
		"Zoë":       "zoe",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), in)
	}
}

func TestFromTextDedupesAndSorts(t *testing.T) {
	got := FromText("maria\tJosé  jose\nMARIA ana\n\n")
	require.Equal(t, []string{"ana", "jose", "maria"}, got)
}

func TestFromTextEmpty(t *testing.T) {
	require.Empty(t, FromText(" \n\t "))
}

func TestFromFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("Zoë\nbob\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("bob carla"), 0o644))

	got, err := FromFiles([]string{a, b})
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "carla", "zoe"}, got)
}

func TestFromFilesMissing(t *testing.T) {
	_, err := FromFiles([]string{filepath.Join(t.TempDir(), "nope.txt")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "open input")
}

func TestReadFrom(t *testing.T) {
	s := NewSet()
	_, err := s.ReadFrom(strings.NewReader("uno dos\ntres uno"))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
}
