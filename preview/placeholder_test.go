package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPlaceholdersWholeCandidate(t *testing.T) {
	out := ExpandPlaceholders("cat {}", "foo.go", "")
	assert.Equal(t, "cat foo.go", out)
}

func TestExpandPlaceholdersSingleField(t *testing.T) {
	out := ExpandPlaceholders("less {2}", "a:b:c", ":")
	assert.Equal(t, "less b", out)
}

func TestExpandPlaceholdersFieldRange(t *testing.T) {
	out := ExpandPlaceholders("echo {2..3}", "a:b:c:d", ":")
	assert.Equal(t, "echo b:c", out)
}

func TestExpandPlaceholdersOpenEndedRange(t *testing.T) {
	out := ExpandPlaceholders("echo {2..}", "a:b:c:d", ":")
	assert.Equal(t, "echo b:c:d", out)
}

func TestExpandPlaceholdersOpenStartedRange(t *testing.T) {
	out := ExpandPlaceholders("echo {..2}", "a:b:c:d", ":")
	assert.Equal(t, "echo a:b", out)
}

func TestExpandPlaceholdersEscapedBraceIsLiteral(t *testing.T) {
	out := ExpandPlaceholders(`less (\{}`, "foo.go", "")
	assert.Equal(t, "less ({}", out)
}

func TestExpandPlaceholdersOutOfRangeFieldYieldsEmpty(t *testing.T) {
	out := ExpandPlaceholders("echo [{5}]", "a:b", ":")
	assert.Equal(t, "echo []", out)
}

func TestExpandPlaceholdersWhitespaceDelimiter(t *testing.T) {
	out := ExpandPlaceholders("echo {1}", "  foo   bar  ", "")
	assert.Equal(t, "echo foo", out)
}

func TestExpandPlaceholdersUnterminatedBraceIsLiteral(t *testing.T) {
	out := ExpandPlaceholders("echo {1", "a:b", ":")
	assert.Equal(t, "echo {1", out)
}

func TestExpandPlaceholdersMultipleOccurrences(t *testing.T) {
	out := ExpandPlaceholders("diff {1} {2}", "left:right", ":")
	assert.Equal(t, "diff left right", out)
}
