package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/scorer"
)

func TestCompileQueryExtended(t *testing.T) {
	q, err := compileQuery("hello", scorer.CaseSmart, false, false)
	assert.NoError(t, err)
	assert.Nil(t, q.Regex)
	assert.Equal(t, "hello", q.Original)
}

func TestCompileQueryRegexCompileError(t *testing.T) {
	// An unbalanced paren is not a valid regex; compileQuery must report the
	// error rather than silently falling back to extended mode.
	q, err := compileQuery("(", scorer.CaseSmart, false, true)
	assert.Error(t, err)
	assert.Nil(t, q)
}

func TestCompileQueryRegex(t *testing.T) {
	q, err := compileQuery("^foo.*bar$", scorer.CaseSmart, false, true)
	assert.NoError(t, err)
	assert.NotNil(t, q.Regex)
}

func TestNormalizeReplTokenDefault(t *testing.T) {
	assert.Equal(t, "cat {}", normalizeReplToken("cat {}", "{}"))
	assert.Equal(t, "cat {}", normalizeReplToken("cat {}", ""))
}

func TestNormalizeReplTokenCustom(t *testing.T) {
	got := normalizeReplToken("vim -I REPL", "-I REPL")
	assert.Equal(t, "vim {}", got)
}

func TestNormalizeReplTokenNoCommand(t *testing.T) {
	assert.Equal(t, "", normalizeReplToken("", "{x}"))
}

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitComma("a,b,c"))
	assert.Equal(t, []string{""}, splitComma(""))
	assert.Equal(t, []string{"enter"}, splitComma("enter"))
}

func TestParseExpectKeys(t *testing.T) {
	keys := parseExpectKeys("ctrl-y,enter")
	assert.True(t, keys["ctrl-y"])
	assert.True(t, keys["enter"])
	assert.Nil(t, parseExpectKeys(""))
}

func TestBuildLayoutOptions(t *testing.T) {
	opts := &config.Options{
		Reverse:   true,
		TabStop:   4,
		NoHscroll: true,
		Prompt:    "> ",
		CmdPrompt: "c> ",
		Header:    "line one\nline two",
	}
	layout := buildLayoutOptions(opts)
	assert.True(t, layout.Reverse)
	assert.Equal(t, uint64(4), layout.TabStop)
	assert.True(t, layout.NoHscroll)
	assert.Equal(t, "> ", layout.Prompt)
	assert.Equal(t, []string{"line one", "line two"}, layout.HeaderLines)
}
