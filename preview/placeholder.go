// Package preview renders the configured preview command for the row
// under the cursor: placeholder expansion against that row's fields,
// subprocess spawn and capture, and scroll-offset parsing for the
// preview pane's initial position.
package preview

import (
	"strconv"
	"strings"
)

// ExpandPlaceholders substitutes {}, {1}, {2}, {N..M} in template with
// fields split from candidate by delim (empty delim means "whitespace
// run"). A placeholder preceded by a backslash is emitted literally
// instead of being expanded.
func ExpandPlaceholders(template, candidate, delim string) string {
	fields := splitFields(candidate, delim)

	var out strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '{' {
			out.WriteRune('{')
			i++
			continue
		}
		if r != '{' {
			out.WriteRune(r)
			continue
		}

		end := strings.IndexRune(string(runes[i:]), '}')
		if end < 0 {
			out.WriteRune(r)
			continue
		}
		end += i
		spec := string(runes[i+1 : end])
		out.WriteString(expandFieldSpec(spec, candidate, fields, delim))
		i = end
	}
	return out.String()
}

func expandFieldSpec(spec, candidate string, fields []string, delim string) string {
	if spec == "" {
		return candidate
	}

	if strings.Contains(spec, "..") {
		parts := strings.SplitN(spec, "..", 2)
		start, _ := strconv.Atoi(parts[0])
		end := len(fields)
		if parts[1] != "" {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				end = n
			}
		}
		if start <= 0 {
			start = 1
		}
		if end > len(fields) {
			end = len(fields)
		}
		if start > end {
			return ""
		}
		return strings.Join(fields[start-1:end], fieldSep(delim))
	}

	n, err := strconv.Atoi(spec)
	if err != nil || n <= 0 || n > len(fields) {
		return ""
	}
	return fields[n-1]
}

func splitFields(s, delim string) []string {
	if delim == "" {
		return strings.Fields(s)
	}
	return strings.Split(s, delim)
}

func fieldSep(delim string) string {
	if delim == "" {
		return " "
	}
	return delim
}
