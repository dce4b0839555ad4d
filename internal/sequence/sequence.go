// Package sequence enumerates the numeric and date-like suffixes appended to
// base forms.
//
// Each Family yields a lazy, finite, restartable iter.Seq: ranging over it
// twice produces the same candidates in the same order. A Family also
// describes the lengths it produces (Bands) so callers can size output
// without generating it.
package sequence

import (
	"iter"
	"unicode/utf8"
)

// Family selects a suffix generator.
type Family int

const (
	// Literal yields the prefix itself, once.
	Literal Family = iota
	// Numbers yields 0-9, 00-99, 000-999 and 0000-9999.
	Numbers
	// FullDates yields DDMMYYYY for years 1950-2030.
	FullDates
	// ShortDates yields DDMMYY for years 00-99.
	ShortDates
)

// Date ranges, inclusive. No calendar validation: every day 1-31 is
// combined with every month.
const (
	FirstDay       = 1
	LastDay        = 31
	FirstMonth     = 1
	LastMonth      = 12
	FirstFullYear  = 1950
	LastFullYear   = 2030
	FirstShortYear = 0
	LastShortYear  = 99
)

const (
	dayMonths = (LastDay - FirstDay + 1) * (LastMonth - FirstMonth + 1)

	NumbersCount    = 10 + 100 + 1000 + 10000
	FullDatesCount  = dayMonths * (LastFullYear - FirstFullYear + 1)
	ShortDatesCount = dayMonths * (LastShortYear - FirstShortYear + 1)
	InfixCount      = NumbersCount + FullDatesCount + ShortDatesCount
)

// InfixFamilies are appended after base+symbol, in this order.
var InfixFamilies = []Family{Numbers, FullDates, ShortDates}

func (f Family) String() string {
	switch f {
	case Literal:
		return "literal"
	case Numbers:
		return "numbers"
	case FullDates:
		return "full-dates"
	case ShortDates:
		return "short-dates"
	}
	return "unknown"
}

// Band groups the candidates of a family sharing one suffix length.
type Band struct {
	SuffixLen int
	Count     int
}

// Bands reports the suffix lengths the family produces.
func (f Family) Bands() []Band {
	switch f {
	case Literal:
		return []Band{{0, 1}}
	case Numbers:
		return []Band{{1, 10}, {2, 100}, {3, 1000}, {4, 10000}}
	case FullDates:
		return []Band{{8, FullDatesCount}}
	case ShortDates:
		return []Band{{6, ShortDatesCount}}
	}
	return nil
}

// Count is the total number of candidates per prefix.
func (f Family) Count() int {
	n := 0
	for _, b := range f.Bands() {
		n += b.Count
	}
	return n
}

// Seq returns the candidates of the family for prefix.
func (f Family) Seq(prefix string) iter.Seq[string] {
	switch f {
	case Numbers:
		return Numeric(prefix)
	case FullDates:
		return DatesFull(prefix)
	case ShortDates:
		return DatesShort(prefix)
	}
	return func(yield func(string) bool) { yield(prefix) }
}

// Numeric yields base followed by every integer of widths 1 to 4, zero-padded
// to the width. Widths overlap on purpose: "x5" and "x05" are both produced.
func Numeric(base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, len(base)+4)
		buf = append(buf, base...)
		for width, limit := 1, 10; width <= 4; width, limit = width+1, limit*10 {
			for n := 0; n < limit; n++ {
				if !yield(string(appendPadded(buf, n, width))) {
					return
				}
			}
		}
	}
}

// DatesFull yields base + DD + MM + YYYY.
func DatesFull(base string) iter.Seq[string] {
	return dates(base, FirstFullYear, LastFullYear, 4)
}

// DatesShort yields base + DD + MM + YY.
func DatesShort(base string) iter.Seq[string] {
	return dates(base, FirstShortYear, LastShortYear, 2)
}

func dates(base string, firstYear, lastYear, yearWidth int) iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 0, len(base)+4+yearWidth)
		buf = append(buf, base...)
		for d := FirstDay; d <= LastDay; d++ {
			dd := appendPadded(buf, d, 2)
			for m := FirstMonth; m <= LastMonth; m++ {
				mm := appendPadded(dd, m, 2)
				for y := firstYear; y <= lastYear; y++ {
					if !yield(string(appendPadded(mm, y, yearWidth))) {
						return
					}
				}
			}
		}
	}
}

// Infix yields numeric, full-date and short-date sequences, each inserted
// after base+symbol.
func Infix(base string, symbol rune) iter.Seq[string] {
	prefix := string(utf8.AppendRune([]byte(base), symbol))
	seqs := make([]iter.Seq[string], len(InfixFamilies))
	for i, f := range InfixFamilies {
		seqs[i] = f.Seq(prefix)
	}
	return Concat(seqs...)
}

// Concat chains sequences in order.
func Concat(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// appendPadded appends n in decimal, left-padded with zeros to width.
// It writes into buf's spare capacity, so callers must copy before reuse.
func appendPadded(buf []byte, n, width int) []byte {
	var tmp [20]byte
	i := len(tmp)
	for n > 0 || i == len(tmp) {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	for len(tmp)-i < width {
		i--
		tmp[i] = '0'
	}
	return append(buf, tmp[i:]...)
}
