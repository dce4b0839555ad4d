// Package leet holds the leetspeak substitution rules.
//
// Every rule is a total character mapping: characters it does not name pass
// through unchanged. Conditional rules carry the letter whose presence in the
// seed word enables them; the test is made once per word by Active.
package leet

import "strings"

// Rule is one substitution rule.
type Rule struct {
	Name string
	// Letter gates the rule on the seed word containing it (either case).
	// Zero means the rule always applies.
	Letter byte

	r *strings.Replacer
}

func newRule(name string, letter byte, pairs ...string) Rule {
	return Rule{Name: name, Letter: letter, r: strings.NewReplacer(pairs...)}
}

var (
	Vowels = newRule("vowels", 0,
		"a", "4", "A", "4",
		"e", "3", "E", "3",
		"i", "1", "I", "1",
		"o", "0", "O", "0",
	)
	VowelsS = newRule("vowels+s", 0,
		"s", "$", "S", "$",
		"a", "4", "A", "4",
		"e", "3", "E", "3",
		"i", "1", "I", "1",
		"o", "0", "O", "0",
	)

	OnlyA = newRule("a", 'a', "a", "4", "A", "4")
	OnlyE = newRule("e", 'e', "e", "3", "E", "3")
	OnlyI = newRule("i", 'i', "i", "1", "I", "1")
	OnlyO = newRule("o", 'o', "o", "0", "O", "0")
	OnlyS = newRule("s", 's', "s", "$", "S", "$")
)

// SingleVowels lists the single-vowel rules in emission order.
var SingleVowels = []Rule{OnlyA, OnlyE, OnlyI, OnlyO}

// Apply rewrites s with the rule's mapping.
func (r Rule) Apply(s string) string {
	return r.r.Replace(s)
}

// ApplyAll maps every element of forms.
func (r Rule) ApplyAll(forms ...string) []string {
	out := make([]string, len(forms))
	for i, f := range forms {
		out[i] = r.Apply(f)
	}
	return out
}

// Enabled reports whether the rule applies to the seed word.
func (r Rule) Enabled(word string) bool {
	if r.Letter == 0 {
		return true
	}
	return strings.ContainsAny(word, string([]byte{r.Letter, r.Letter - 'a' + 'A'}))
}

// Active filters rules down to those enabled for word, preserving order.
func Active(word string, rules []Rule) []Rule {
	var out []Rule
	for _, r := range rules {
		if r.Enabled(word) {
			out = append(out, r)
		}
	}
	return out
}
