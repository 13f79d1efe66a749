// Package duration parses the age filters accepted by "ls --since".
//
// Ages are written as Nh, Nd, Nw or Nm (30-day months). Anything else is
// tried as a Go duration, so "90m" means ninety minutes.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var short = regexp.MustCompile(`^(\d+)([hdwm])$`)

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
}

// Parse returns the duration written in s.
func Parse(s string) (time.Duration, error) {
	if m := short.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		// m is months here; a Go duration would read it as minutes.
		if m[2] == "m" {
			return time.Duration(n) * 30 * day, nil
		}
		return time.Duration(n) * units[m[2]], nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid duration: %q (use 12h, 7d, 4w or 3m)", s)
	}
	return d, nil
}

// Since returns the Unix time d before now.
func Since(now time.Time, d time.Duration) int64 {
	return now.Add(-d).Unix()
}
