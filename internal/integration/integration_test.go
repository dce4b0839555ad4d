// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rustoveva/internal/app"
)

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEndFromFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	require.NoError(t, os.Mkdir(in, 0o755))
	write(t, filepath.Join(in, "a.txt"), "José  ana\n")
	write(t, filepath.Join(in, "b.txt"), "ANA\nbob\n")
	dst := filepath.Join(dir, "dict.txt")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"-o", dst, "-m", "-r", "1-4", "-q",
		filepath.Join(in, "*.txt"),
	}, &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	// Words are sorted, lower-cased and stripped of accents.
	require.Equal(t, []string{"ana", "Ana", "ANA"}, lines[:3])
	require.Contains(t, lines, "jose")
	require.Contains(t, lines, "J0S3")
	require.Contains(t, lines, "bob-")
	for _, l := range lines {
		require.LessOrEqual(t, len(l), 4)
	}
}

func TestStdoutAndFileAreIdentical(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "dict.txt")
	argv := []string{"-p", "maria luis", "-m", "-r", "6-7", "-q", "--symbols", "._"}

	var stdout, errBuf bytes.Buffer
	require.Equal(t, 0, app.Run(append(argv, "-o", "-"), &stdout, &errBuf), errBuf.String())
	require.Equal(t, 0, app.Run(append(argv, "-o", dst), &bytes.Buffer{}, &errBuf), errBuf.String())

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, sha256.Sum256(stdout.Bytes()), sha256.Sum256(data))
}

func TestRunsAreReproducible(t *testing.T) {
	run := func() [32]byte {
		var out, errBuf bytes.Buffer
		code := app.Run([]string{"-p", "sasha", "-m", "-r", "8-8", "-o", "-", "-q"}, &out, &errBuf)
		require.Equal(t, 0, code, errBuf.String())
		require.NotZero(t, out.Len())
		return sha256.Sum256(out.Bytes())
	}
	require.Equal(t, run(), run())
}
