// internal/writers/sink.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// DefaultBufferSize matches the app's stdout buffer.
const DefaultBufferSize = 64 << 10

// Window is an inclusive byte-length range. Max == math.MaxInt means unbounded.
type Window struct {
	Min int
	Max int
}

// Unbounded accepts every candidate.
var Unbounded = Window{Min: 0, Max: math.MaxInt}

// Contains reports whether n is within the window.
func (w Window) Contains(n int) bool {
	return n >= w.Min && n <= w.Max
}

// Bounded reports whether the window filters anything.
func (w Window) Bounded() bool {
	return w.Min > 0 || w.Max != math.MaxInt
}

func (w Window) String() string {
	if w.Max == math.MaxInt {
		return fmt.Sprintf("%d-", w.Min)
	}
	return fmt.Sprintf("%d-%d", w.Min, w.Max)
}

// LineSink writes newline-terminated candidates that fall inside a Window.
// Writes are buffered; Flush or Close must be called to release them.
type LineSink struct {
	w      *bufio.Writer
	closer io.Closer
	win    Window

	lines uint64
	bytes uint64
}

// NewLineSink wraps out. The caller keeps ownership of out; Close only flushes.
func NewLineSink(out io.Writer, win Window, bufSize int) *LineSink {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	return &LineSink{w: bufio.NewWriterSize(out, bufSize), win: win}
}

// NewOwnedLineSink is NewLineSink for a stream the sink closes on Close.
func NewOwnedLineSink(out io.WriteCloser, win Window, bufSize int) *LineSink {
	s := NewLineSink(out, win, bufSize)
	s.closer = out
	return s
}

// Emit writes candidate when its byte length is inside the window.
// It reports whether the candidate was written.
func (s *LineSink) Emit(candidate string) (bool, error) {
	if !s.win.Contains(len(candidate)) {
		return false, nil
	}
	if _, err := s.w.WriteString(candidate); err != nil {
		return false, err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return false, err
	}
	s.lines++
	s.bytes += uint64(len(candidate)) + 1
	return true, nil
}

// Flush pushes buffered candidates to the underlying writer.
func (s *LineSink) Flush() error {
	return s.w.Flush()
}

// Close flushes and, when the sink owns a closer, closes it. The flush error
// wins over the close error.
func (s *LineSink) Close() error {
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}
	return err
}

// Lines is the number of candidates written so far.
func (s *LineSink) Lines() uint64 { return s.lines }

// Bytes is the number of bytes written so far, newlines included.
func (s *LineSink) Bytes() uint64 { return s.bytes }

// Window returns the active length window.
func (s *LineSink) Window() Window { return s.win }
