package sequence

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, f Family, prefix string) []string {
	t.Helper()
	return slices.Collect(f.Seq(prefix))
}

func TestNumericCountAndOrder(t *testing.T) {
	got := slices.Collect(Numeric("x"))
	require.Len(t, got, 11110)
	require.Equal(t, NumbersCount, len(got))

	require.Equal(t, "x0", got[0])
	require.Equal(t, "x9", got[9])
	require.Equal(t, "x00", got[10])
	require.Equal(t, "x99", got[109])
	require.Equal(t, "x000", got[110])
	require.Equal(t, "x0000", got[1110])
	require.Equal(t, "x9999", got[len(got)-1])

	// overlapping widths are intentional
	require.Contains(t, got, "x5")
	require.Contains(t, got, "x05")
	require.Contains(t, got, "x005")
}

func TestDatesFull(t *testing.T) {
	got := slices.Collect(DatesFull("ana"))
	require.Len(t, got, 30132)
	require.Equal(t, 31*12*81, FullDatesCount)

	require.Equal(t, "ana01011950", got[0])
	require.Equal(t, "ana01012030", got[80])
	require.Equal(t, "ana01021950", got[81])
	require.Equal(t, "ana31122030", got[len(got)-1])
	require.Contains(t, got, "ana31021999", "no calendar validation")
}

func TestDatesShort(t *testing.T) {
	got := slices.Collect(DatesShort("b"))
	require.Len(t, got, ShortDatesCount)
	require.Equal(t, 37200, ShortDatesCount)
	require.Equal(t, "b010100", got[0])
	require.Equal(t, "b010199", got[99])
	require.Equal(t, "b311299", got[len(got)-1])
}

func TestInfix(t *testing.T) {
	got := slices.Collect(Infix("bob", '-'))
	require.Len(t, got, InfixCount)
	require.Equal(t, "bob-0", got[0])
	require.Equal(t, "bob-9999", got[NumbersCount-1])
	require.Equal(t, "bob-01011950", got[NumbersCount])
	require.Equal(t, "bob-010100", got[NumbersCount+FullDatesCount])
	require.Equal(t, "bob-311299", got[len(got)-1])
}

func TestSeqIsRestartable(t *testing.T) {
	s := Numeric("r")
	first := slices.Collect(s)
	second := slices.Collect(s)
	require.Equal(t, first, second)
}

func TestSeqStopsEarly(t *testing.T) {
	n := 0
	for range Infix("z", '_') {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestBandsMatchGeneratedLengths(t *testing.T) {
	for _, f := range []Family{Literal, Numbers, FullDates, ShortDates} {
		t.Run(f.String(), func(t *testing.T) {
			counts := map[int]int{}
			for _, s := range collect(t, f, "pre") {
				counts[len(s)-len("pre")]++
			}
			want := map[int]int{}
			for _, b := range f.Bands() {
				want[b.SuffixLen] += b.Count
			}
			require.Equal(t, want, counts)
			require.Equal(t, len(collect(t, f, "pre")), f.Count())
		})
	}
}

func TestAppendPadded(t *testing.T) {
	cases := []struct {
		n, width int
		want     string
	}{
		{0, 1, "0"},
		{0, 4, "0000"},
		{7, 2, "07"},
		{42, 3, "042"},
		{1999, 4, "1999"},
		{12345, 2, "12345"},
	}
	for _, c := range cases {
		if got := string(appendPadded(nil, c.n, c.width)); got != c.want {
			t.Errorf("appendPadded(%d,%d) = %q, want %q", c.n, c.width, got, c.want)
		}
	}
}
