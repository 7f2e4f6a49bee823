package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// statesLabel lists a program's state codes, or the nationwide label when the
// program is not restricted.
func statesLabel(states []string, nationwide string) string {
	if len(states) == 0 {
		return nationwide
	}
	return strings.Join(states, ", ")
}

// clamp limits v to [lo, hi]. lo wins when the range is empty.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
