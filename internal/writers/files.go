package writers

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// ErrOutputExists is returned when an output file is already present.
// Dictionaries are never overwritten or appended to.
var ErrOutputExists = errors.New("output file already exists")

// CreateExclusive creates path for writing, failing if it already exists.
func CreateExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// Exists reports whether path is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SplitPath names the per-word output file: <word>_<base> next to output.
func SplitPath(output, word string) string {
	dir, base := filepath.Split(output)
	return filepath.Join(dir, word+"_"+base)
}

// OpenSink creates path exclusively and returns a sink that closes it.
func OpenSink(path string, win Window, bufSize int) (*LineSink, error) {
	f, err := CreateExclusive(path)
	if err != nil {
		return nil, err
	}
	return NewOwnedLineSink(f, win, bufSize), nil
}

// IsBrokenPipe reports whether err comes from a reader that stopped early,
// such as "rustoveva -o - | head". The run is then considered complete.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
