// internal/engine/plan.go
package engine

import (
	"rustoveva/internal/leet"
	"rustoveva/internal/sequence"
	"rustoveva/internal/variant"
)

// Step emits Family's candidates for Prefix.
type Step struct {
	Prefix string
	Family sequence.Family
}

// Plan is the complete, ordered expansion of one seed word.
type Plan struct {
	Word    string
	Forms   variant.Forms
	Symbols SymbolSet
	Steps   []Step
}

// Size is a candidate count and its output size in bytes, newlines included.
type Size struct {
	Candidates uint64
	Bytes      uint64
}

// Add accumulates o into s.
func (s *Size) Add(o Size) {
	s.Candidates += o.Candidates
	s.Bytes += o.Bytes
}

// NewPlan lays out the expansion of word.
//
// Order:
//  1. direct forms
//  2. vowel leet of name/cap/upper
//  3. vowel+s leet (word has s)
//  4. single-vowel leet, per vowel present
//  5. per symbol: base+symbol
//  6. numbers, 7. full dates, 8. short dates, after each direct form
//  9. per symbol: infix numbers/dates after base+symbol
//
// Step 5 suffixes the vowel+s leet unconditionally while step 9 uses plain
// vowel leet of name and cap only. The two base lists differ on purpose; do
// not merge them.
func NewPlan(word string, minimal bool, symbols SymbolSet) Plan {
	f := variant.Derive(word, minimal)
	core := f.Core()
	direct := f.Direct()

	hasS := leet.OnlyS.Enabled(word)
	vowels := leet.Active(word, leet.SingleVowels)

	var b builder

	b.literal(direct...)
	b.literal(leet.Vowels.ApplyAll(core...)...)
	if hasS {
		b.literal(leet.VowelsS.ApplyAll(core...)...)
	}
	for _, r := range vowels {
		b.literal(r.ApplyAll(core...)...)
	}

	suffixBases := append([]string(nil), direct...)
	suffixBases = append(suffixBases, leet.VowelsS.ApplyAll(core...)...)
	if hasS {
		suffixBases = append(suffixBases, leet.OnlyS.ApplyAll(core...)...)
	}
	for _, r := range vowels {
		suffixBases = append(suffixBases, r.ApplyAll(core...)...)
	}
	for _, sym := range symbols {
		for _, base := range suffixBases {
			b.add(base+string(sym), sequence.Literal)
		}
	}

	for _, fam := range []sequence.Family{sequence.Numbers, sequence.FullDates, sequence.ShortDates} {
		for _, base := range direct {
			b.add(base, fam)
		}
	}

	infixBases := append([]string(nil), direct...)
	infixBases = append(infixBases, leet.Vowels.Apply(f.Name), leet.Vowels.Apply(f.Cap))
	if hasS {
		infixBases = append(infixBases, leet.VowelsS.Apply(f.Name))
		infixBases = append(infixBases, leet.OnlyS.ApplyAll(core...)...)
	}
	for _, r := range vowels {
		infixBases = append(infixBases, r.ApplyAll(core...)...)
	}
	for _, sym := range symbols {
		for _, base := range infixBases {
			prefix := base + string(sym)
			for _, fam := range sequence.InfixFamilies {
				b.add(prefix, fam)
			}
		}
	}

	return Plan{Word: word, Forms: f, Symbols: symbols, Steps: b.steps}
}

// Estimate sizes the plan's output under keep, a byte-length filter, without
// generating any candidate.
func (p Plan) Estimate(keep func(n int) bool) Size {
	var total Size
	for _, st := range p.Steps {
		for _, band := range st.Family.Bands() {
			n := len(st.Prefix) + band.SuffixLen
			if keep != nil && !keep(n) {
				continue
			}
			total.Candidates += uint64(band.Count)
			total.Bytes += uint64(band.Count) * uint64(n+1)
		}
	}
	return total
}

// Candidates is the unfiltered candidate count.
func (p Plan) Candidates() uint64 {
	return p.Estimate(nil).Candidates
}

type builder struct{ steps []Step }

func (b *builder) add(prefix string, fam sequence.Family) {
	b.steps = append(b.steps, Step{Prefix: prefix, Family: fam})
}

func (b *builder) literal(forms ...string) {
	for _, s := range forms {
		b.add(s, sequence.Literal)
	}
}
