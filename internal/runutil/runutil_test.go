package runutil

import (
	"math"
	"testing"
	"time"

	"rustoveva/internal/writers"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want writers.Window
	}{
		{"", writers.Unbounded},
		{"8-12", writers.Window{Min: 8, Max: 12}},
		{"10-10", writers.Window{Min: 10, Max: 10}},
		{"8-", writers.Window{Min: 8, Max: math.MaxInt}},
		{"-12", writers.Window{Min: 0, Max: 12}},
		{"x-y", writers.Unbounded},
	}
	for _, tc := range tests {
		got, err := ParseRange(tc.in)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseRangeErrors(t *testing.T) {
	for _, in := range []string{"8", "1-2-3", "12-8"} {
		if _, err := ParseRange(in); err == nil {
			t.Errorf("ParseRange(%q): expected error", in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond); got != "3h 4m 5s" {
		t.Fatalf("got %q", got)
	}
	if got := FormatClock(0); got != "0h 0m 0s" {
		t.Fatalf("got %q", got)
	}
}

func TestDescribeWindow(t *testing.T) {
	if got := DescribeWindow(writers.Window{Min: 8, Max: 12}); got != "between 8 and 12 characters" {
		t.Fatalf("got %q", got)
	}
	if got := DescribeWindow(writers.Window{Min: 3, Max: math.MaxInt}); got != "at least 3 characters" {
		t.Fatalf("got %q", got)
	}
}
