package preview

import (
	"strconv"
	"strings"
)

// ParseOffset evaluates a preview scroll-offset expression against the
// cursor row's candidate text: a literal line number ("+N"), a field
// reference ("+{k}", taken as a line number), or a field reference minus a
// fixed adjustment ("+{k}-N"). Returns 0 (no scroll) if expr is empty or
// unparseable.
func ParseOffset(expr, candidate, delim string) int {
	expr = strings.TrimPrefix(expr, "+")
	if expr == "" {
		return 0
	}

	if !strings.HasPrefix(expr, "{") {
		n, err := strconv.Atoi(expr)
		if err != nil {
			return 0
		}
		return clampNonNegative(n)
	}

	closeIdx := strings.IndexRune(expr, '}')
	if closeIdx < 0 {
		return 0
	}
	fieldSpec := expr[1:closeIdx]
	rest := expr[closeIdx+1:]

	fields := splitFields(candidate, delim)
	n, err := strconv.Atoi(fieldSpec)
	if err != nil || n <= 0 || n > len(fields) {
		return 0
	}
	base, err := strconv.Atoi(strings.TrimSpace(fields[n-1]))
	if err != nil {
		return 0
	}

	if rest == "" {
		return clampNonNegative(base)
	}

	adj, err := strconv.Atoi(rest) // rest already carries its sign, e.g. "-3"
	if err != nil {
		return 0
	}
	return clampNonNegative(base + adj)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
