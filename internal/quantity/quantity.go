// Package quantity parses human-readable magnitudes for vertex and edge
// counts, e.g. "100", "2M", "64Ki". Plain suffixes are decimal (k = 1000);
// an "i" suffix makes them binary (Ki = 1024).
package quantity

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Parse converts a magnitude string to its integer value.
func Parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty quantity")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative quantity %q", s)
	}
	v, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return v, nil
}
