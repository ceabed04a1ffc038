package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLocationsFromLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []fileLocation
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "empty lines",
			input:    "\n\n\n",
			expected: nil,
		},
		{
			name:  "single line, grep format",
			input: "foo/bar.go:12:    this is a test",
			expected: []fileLocation{
				{path: "foo/bar.go", lineNum: 12, snippet: "this is a test"},
			},
		},
		{
			name:  "single line, ripgrep format",
			input: "foo/bar.go:12:34:    this is a test",
			expected: []fileLocation{
				{path: "foo/bar.go", lineNum: 12, snippet: "this is a test"},
			},
		},
		{
			name: "multiple lines",
			input: strings.Join([]string{
				"foo/bar.go:12:34:    this is a test",
				"",
				"baz/bat.go:56:78:    and another",
			}, "\n"),
			expected: []fileLocation{
				{path: "foo/bar.go", lineNum: 12, snippet: "this is a test"},
				{path: "baz/bat.go", lineNum: 56, snippet: "and another"},
			},
		},
		{
			name:  "snippet with colon",
			input: "foobar:12:34:test:with:separator",
			expected: []fileLocation{
				{path: "foobar", lineNum: 12, snippet: "test:with:separator"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			locs, err := fileLocationsFromLines(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, locs)
		})
	}
}

func TestFileLocationsFromLinesErrors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectInErr string
	}{
		{name: "non-numeric line num", input: "foobar.go:abc:test", expectInErr: "invalid line number"},
		{name: "one part", input: "foobar", expectInErr: "unsupported"},
		{name: "two parts", input: "foobar:12", expectInErr: "unsupported"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fileLocationsFromLines(strings.NewReader(tc.input))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectInErr)
		})
	}
}
