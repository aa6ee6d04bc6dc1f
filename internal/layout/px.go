package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPx writes an extent the way a CSS length is written, e.g. "120px".
func FormatPx(v int) string {
	return strconv.Itoa(v) + "px"
}

// ParsePx parses an extent written as "120px" or a bare "120".
func ParsePx(s string) (int, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSpace(strings.TrimSuffix(t, "px"))
	v, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("parse extent %q: %w", s, err)
	}
	return v, nil
}
