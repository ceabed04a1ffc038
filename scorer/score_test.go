package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyDeterministic(t *testing.T) {
	q, c := []rune("abc"), []rune("a_fooBarAbc")
	r1, ok1 := Fuzzy(q, c, CaseSmart)
	r2, ok2 := Fuzzy(q, c, CaseSmart)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, r1, r2)
}

func TestFuzzyNoMatch(t *testing.T) {
	_, ok := Fuzzy([]rune("xyz"), []rune("abc"), CaseSmart)
	assert.False(t, ok)
}

func TestFuzzyCaseSmart(t *testing.T) {
	candidate := []rune("aBcXyZ")

	_, ok := Fuzzy([]rune("abc"), candidate, CaseSmart)
	assert.True(t, ok, "lowercase query should fold to match mixed case")

	_, ok = Fuzzy([]rune("aBc"), candidate, CaseSmart)
	assert.True(t, ok, "query with uppercase should respect case")

	_, ok = Fuzzy([]rune("ABc"), candidate, CaseSmart)
	assert.False(t, ok, "query with uppercase and wrong case should not match")
}

func TestFuzzyCaseRespect(t *testing.T) {
	candidate := []rune("aBcXyZ")
	_, ok := Fuzzy([]rune("abc"), candidate, CaseRespect)
	assert.False(t, ok)
}

func TestFuzzyWordBoundaryBonus(t *testing.T) {
	// "fb" matches foo_bar at two word-boundary starts: higher score than
	// matching the same two letters off-boundary inside another word.
	boundary, ok := Fuzzy([]rune("fb"), []rune("foo_bar"), CaseSmart)
	require.True(t, ok)

	offBoundary, ok := Fuzzy([]rune("fb"), []rune("xfbx"), CaseSmart)
	require.True(t, ok)

	assert.Greater(t, boundary.Score, offBoundary.Score)
}

func TestFuzzyConsecutiveBonus(t *testing.T) {
	consecutive, ok := Fuzzy([]rune("ab"), []rune("xabx"), CaseSmart)
	require.True(t, ok)

	skipped, ok := Fuzzy([]rune("ab"), []rune("xaxbx"), CaseSmart)
	require.True(t, ok)

	assert.Greater(t, consecutive.Score, skipped.Score)
}

func TestFuzzyPositionsSortedUnique(t *testing.T) {
	r, ok := Fuzzy([]rune("aaa"), []rune("banana"), CaseSmart)
	require.True(t, ok)
	for i := 1; i < len(r.Positions); i++ {
		assert.Greater(t, r.Positions[i], r.Positions[i-1])
	}
}

func TestExactPrefixSuffixEqual(t *testing.T) {
	candidate := []rune("foobar")

	_, ok := Exact([]rune("foo"), candidate, CaseRespect, ExactPrefix)
	assert.True(t, ok)

	_, ok = Exact([]rune("bar"), candidate, CaseRespect, ExactSuffix)
	assert.True(t, ok)

	_, ok = Exact([]rune("foobar"), candidate, CaseRespect, ExactEqual)
	assert.True(t, ok)

	_, ok = Exact([]rune("oob"), candidate, CaseRespect, ExactEqual)
	assert.False(t, ok)

	_, ok = Exact([]rune("oob"), candidate, CaseRespect, ExactSubstring)
	assert.True(t, ok)
}
