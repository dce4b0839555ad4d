// Package variant derives the fixed family of case and reversal forms that
// every expansion step uses as bases. It is pure: no I/O, no state.
package variant

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Forms holds the base forms of one seed word.
// The reversed family is empty when Minimal is set.
type Forms struct {
	Name  string
	Cap   string
	Upper string

	Rev      string // reversed word
	CapRev   string // capitalized, then reversed
	RevCap   string // reversed, then capitalized
	RevUpper string // reversed, then upper-cased

	Minimal bool
}

// Derive computes the forms of word. Minimal skips the reversed family.
func Derive(word string, minimal bool) Forms {
	f := Forms{
		Name:    word,
		Cap:     Capitalize(word),
		Upper:   strings.ToUpper(word),
		Minimal: minimal,
	}
	if minimal {
		return f
	}
	f.Rev = Reverse(word)
	f.CapRev = Reverse(f.Cap)
	f.RevCap = Capitalize(f.Rev)
	f.RevUpper = strings.ToUpper(f.Rev)
	return f
}

// Core returns name, cap and upper in emission order.
func (f Forms) Core() []string {
	return []string{f.Name, f.Cap, f.Upper}
}

// Reversed returns rev, cap_rev, rev_cap and rev_upper in emission order,
// or nil in minimal mode.
func (f Forms) Reversed() []string {
	if f.Minimal {
		return nil
	}
	return []string{f.Rev, f.CapRev, f.RevCap, f.RevUpper}
}

// Direct returns Core followed by Reversed.
func (f Forms) Direct() []string {
	return append(f.Core(), f.Reversed()...)
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Reverse reverses s rune by rune.
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
