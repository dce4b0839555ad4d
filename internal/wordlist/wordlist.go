// Package wordlist prepares seed words: it splits raw input on whitespace,
// strips accents, lower-cases, de-duplicates and sorts.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and strips combining marks (é -> e, ç -> c).
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Set collects normalized words.
type Set struct {
	seen map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

// Add normalizes and records every whitespace-separated field of text.
func (s *Set) Add(text string) {
	for _, f := range strings.Fields(text) {
		if w := Normalize(f); w != "" {
			s.seen[w] = struct{}{}
		}
	}
}

// ReadFrom adds every word read from r.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 1<<20)
	sc.Split(bufio.ScanWords)
	var n int64
	for sc.Scan() {
		n += int64(len(sc.Bytes()))
		s.Add(sc.Text())
	}
	return n, sc.Err()
}

// AddFile adds every word of the file at path.
func (s *Set) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()
	if _, err := s.ReadFrom(f); err != nil {
		return fmt.Errorf("read input %s: %w", path, err)
	}
	return nil
}

// Len is the number of distinct words.
func (s *Set) Len() int { return len(s.seen) }

// Sorted returns the words in ascending byte order.
func (s *Set) Sorted() []string {
	out := make([]string, 0, len(s.seen))
	for w := range s.seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// FromText is a shortcut for a Set built from one inline list.
func FromText(text string) []string {
	s := NewSet()
	s.Add(text)
	return s.Sorted()
}

// FromFiles reads, merges and sorts the words of every file.
func FromFiles(paths []string) ([]string, error) {
	s := NewSet()
	for _, p := range paths {
		if err := s.AddFile(p); err != nil {
			return nil, err
		}
	}
	return s.Sorted(), nil
}
