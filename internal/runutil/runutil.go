// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"rustoveva/internal/writers"
)

// ParseRange turns "MIN-MAX" into a length window. An empty spec is
// unbounded. A bound that is not a number falls back to 0 (MIN) or
// unbounded (MAX), so "8-" and "-12" are accepted.
func ParseRange(spec string) (writers.Window, error) {
	if spec == "" {
		return writers.Unbounded, nil
	}
	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return writers.Window{}, fmt.Errorf("range %q: format must be MIN-MAX, e.g. 8-12", spec)
	}
	win := writers.Unbounded
	if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		win.Min = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
		win.Max = n
	}
	if win.Min > win.Max {
		return writers.Window{}, fmt.Errorf("range %q: min %d exceeds max %d", spec, win.Min, win.Max)
	}
	return win, nil
}

// FormatClock renders d as "Hh Mm Ss", truncated to whole seconds.
func FormatClock(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%dh %dm %ds", secs/3600, (secs%3600)/60, secs%60)
}

// DescribeWindow renders the window for status lines.
func DescribeWindow(w writers.Window) string {
	if w.Max == math.MaxInt {
		return fmt.Sprintf("at least %d characters", w.Min)
	}
	return fmt.Sprintf("between %d and %d characters", w.Min, w.Max)
}
