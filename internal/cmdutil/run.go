package cmdutil

import "context"

// RunWords expands words one at a time. Cancellation is checked between
// words only; a word that has started always runs to completion or error.
// It returns the number of words fully expanded and the first error.
func RunWords(ctx context.Context, words []string, expand func(word string) error) (int, error) {
	done := 0
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if err := expand(w); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}
