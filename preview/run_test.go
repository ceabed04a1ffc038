package preview

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colinmarc/skimmer/item"
)

func setupRunTest(t *testing.T) {
	oldShell := os.Getenv("SKIM_SHELL")
	oldSh := os.Getenv("SHELL")
	os.Setenv("SKIM_SHELL", "")
	os.Setenv("SHELL", "sh")
	t.Cleanup(func() {
		os.Setenv("SKIM_SHELL", oldShell)
		os.Setenv("SHELL", oldSh)
	})
}

func TestRenderExpandsPlaceholderAndCapturesOutput(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "hello.txt"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf 'preview of %s' {}",
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "preview of hello.txt", result.Lines[0])
}

func TestRenderSplitsMultipleLines(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "foo"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf 'one\\ntwo\\nthree'",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, result.Lines)
}

func TestRenderStripsANSIFromOutput(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "foo"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf '\\033[1;31mred\\033[0m'",
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "red", result.Lines[0])
}

func TestRenderComputesScrollOffsetFromFields(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "foo.go:42"}
	result, err := Render(context.Background(), it, Options{
		Command:    "printf ok",
		Delimiter:  ":",
		OffsetExpr: "+{2}",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result.ScrollLine)
}

func TestRenderPropagatesCommandFailure(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "foo"}
	_, err := Render(context.Background(), it, Options{
		Command: "exit 1",
	})
	assert.Error(t, err)
}

func TestRenderAutoScrollsToGrepLocation(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "main.go:88:some snippet"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf ok",
	})
	require.NoError(t, err)
	assert.Equal(t, 87, result.ScrollLine)
}

func TestRenderAutoScrollIgnoresNonLocationCandidate(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "just some text"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf ok",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ScrollLine)
}

func TestRenderExplicitOffsetExprWins(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "main.go:88:some snippet"}
	result, err := Render(context.Background(), it, Options{
		Command:    "printf ok",
		OffsetExpr: "+5",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.ScrollLine)
}

func TestRenderPassesEnv(t *testing.T) {
	setupRunTest(t)

	it := item.Item{Candidate: "foo"}
	result, err := Render(context.Background(), it, Options{
		Command: "printf \"$SKIM_PREVIEW_TEST\"",
		Env:     append(os.Environ(), "SKIM_PREVIEW_TEST=marker"),
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, "marker", result.Lines[0])
}
