package report

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Sample draws up to n lines uniformly from r (reservoir sampling), in the
// order they were drawn.
func Sample(r io.Reader, n int, rng *rand.Rand) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 1<<20)

	res := make([]string, 0, n)
	seen := 0
	for sc.Scan() {
		seen++
		if len(res) < n {
			res = append(res, sc.Text())
			continue
		}
		if j := rng.IntN(seen); j < n {
			res[j] = sc.Text()
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	rng.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	return res, nil
}

// SampleFile is Sample over the file at path.
func SampleFile(path string, n int, rng *rand.Rand) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", path, err)
	}
	defer f.Close()
	lines, err := Sample(f, n, rng)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", path, err)
	}
	return lines, nil
}
