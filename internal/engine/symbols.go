// internal/engine/symbols.go
package engine

import (
	"errors"
	"fmt"
	"unicode"
)

// SymbolSet is the ordered list of separator characters used for direct
// suffixes and infix sequences.
type SymbolSet []rune

// Presets.
var (
	MinimalSymbols = SymbolSet("-_.*+")
	FullSymbols    = SymbolSet("-_!,.%*+$")
)

// PresetSymbols returns the preset matching the mode.
func PresetSymbols(minimal bool) SymbolSet {
	if minimal {
		return MinimalSymbols
	}
	return FullSymbols
}

// ParseSymbols validates a custom symbol list: non-empty, no whitespace,
// no repeats.
func ParseSymbols(s string) (SymbolSet, error) {
	if s == "" {
		return nil, errors.New("symbol set is empty")
	}
	seen := make(map[rune]struct{}, len(s))
	set := make(SymbolSet, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return nil, fmt.Errorf("symbol %q is not printable", r)
		}
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("symbol %q repeated", r)
		}
		seen[r] = struct{}{}
		set = append(set, r)
	}
	return set, nil
}

func (s SymbolSet) String() string { return string(s) }
