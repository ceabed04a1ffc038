package app

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHeaderLines(t *testing.T) {
	src := strings.NewReader("one\ntwo\nthree\nfour\n")
	header, rest, err := splitHeaderLines(src, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, header)

	remaining, err := io.ReadAll(rest)
	require.NoError(t, err)
	assert.Equal(t, "three\nfour\n", string(remaining))
}

func TestSplitHeaderLinesFewerThanRequested(t *testing.T) {
	src := strings.NewReader("only\n")
	header, rest, err := splitHeaderLines(src, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, header)

	remaining, err := io.ReadAll(rest)
	require.NoError(t, err)
	assert.Equal(t, "", string(remaining))
}

func TestSplitHeaderLinesZero(t *testing.T) {
	src := strings.NewReader("a\nb\n")
	header, rest, err := splitHeaderLines(src, 0)
	require.NoError(t, err)
	assert.Nil(t, header)

	remaining, err := io.ReadAll(rest)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(remaining))
}
