package matcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/query"
	"github.com/colinmarc/skimmer/scorer"
)

func seedStore(t *testing.T, lines ...string) *item.Store {
	t.Helper()
	s := item.NewStore()
	gen := s.BeginGeneration()
	for i, l := range lines {
		s.Append(item.New(i, []byte(l), gen, "", nil, nil))
	}
	return s
}

func runToCompletion(t *testing.T, m *Matcher, q *query.Query, opts RunOptions) RankedView {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var last RankedView
	for v := range m.Run(ctx, q, opts) {
		last = v
	}
	require.True(t, last.Finished)
	return last
}

func TestTiebreakDefaultOrder(t *testing.T) {
	a := MatchResult{Score: 10, ItemIndex: 1}
	b := MatchResult{Score: 5, ItemIndex: 0}
	assert.True(t, DefaultTiebreak.Before(a, b))
	assert.False(t, DefaultTiebreak.Before(b, a))
}

func TestTiebreakLengthPrefersShorter(t *testing.T) {
	short := MatchResult{Score: 5, Length: 3}
	long := MatchResult{Score: 5, Length: 10}
	assert.True(t, DefaultTiebreak.Before(short, long))
}

func TestTiebreakIndexBreaksFinalTie(t *testing.T) {
	// Index is compared like every other key of the default chain: the
	// greater value ranks ahead.
	first := MatchResult{Score: 5, ItemIndex: 1}
	second := MatchResult{Score: 5, ItemIndex: 2}
	assert.True(t, DefaultTiebreak.Before(second, first))
}

func TestParseTiebreakCustomChain(t *testing.T) {
	tb, err := ParseTiebreak("index,-score")
	require.NoError(t, err)
	require.Len(t, tb, 2)
	assert.Equal(t, KeyIndex, tb[0].Key)
	assert.Equal(t, KeyScore, tb[1].Key)
	assert.True(t, tb[1].Negate)
}

func TestParseTiebreakRejectsUnknownKey(t *testing.T) {
	_, err := ParseTiebreak("bogus")
	assert.Error(t, err)
}

func TestRunRanksByScoreDescending(t *testing.T) {
	store := seedStore(t, "foobar", "xfbx", "foo_bar")
	q := query.CompileExtended("fb", scorer.CaseSmart, false)
	m := New(store)

	view := runToCompletion(t, m, q, RunOptions{})

	require.Len(t, view.Results, 3)
	for i := 1; i < len(view.Results); i++ {
		assert.True(t, view.Results[i-1].Score >= view.Results[i].Score)
	}
	assert.Equal(t, 3, view.ProcessedUpTo)
}

func TestRunFiltersNonMatches(t *testing.T) {
	store := seedStore(t, "apple", "banana", "cherry")
	q := query.CompileExtended("zzz", scorer.CaseSmart, false)
	m := New(store)

	view := runToCompletion(t, m, q, RunOptions{})
	assert.Empty(t, view.Results)
}

func TestRunNoSortPreservesArrivalOrder(t *testing.T) {
	store := seedStore(t, "b_item", "a_item", "c_item")
	q := query.CompileExtended("item", scorer.CaseSmart, false)
	m := New(store)

	view := runToCompletion(t, m, q, RunOptions{NoSort: true})
	require.Len(t, view.Results, 3)
	assert.Equal(t, 0, view.Results[0].ItemIndex)
	assert.Equal(t, 1, view.Results[1].ItemIndex)
	assert.Equal(t, 2, view.Results[2].ItemIndex)
}

func TestRunTacReversesOrder(t *testing.T) {
	store := seedStore(t, "b_item", "a_item", "c_item")
	q := query.CompileExtended("item", scorer.CaseSmart, false)

	forward := runToCompletion(t, New(store), q, RunOptions{NoSort: true})
	backward := runToCompletion(t, New(store), q, RunOptions{NoSort: true, Tac: true})

	require.Len(t, backward.Results, len(forward.Results))
	for i := range forward.Results {
		assert.Equal(t, forward.Results[i].ItemIndex, backward.Results[len(backward.Results)-1-i].ItemIndex)
	}
}

func TestRunCancellationPublishesNothingFinal(t *testing.T) {
	store := seedStore(t, "candidate_line", "candidate_line2")
	q := query.CompileExtended("candidate", scorer.CaseSmart, false)
	m := New(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // canceled before the run starts scoring any chunk.
	ch := m.Run(ctx, q, RunOptions{})

	for v := range ch {
		assert.False(t, v.Finished)
	}
	assert.NotEqual(t, StateDone, m.State())
}

func TestRunLargeStoreScoresEveryItem(t *testing.T) {
	lines := make([]string, 3000)
	for i := range lines {
		lines[i] = "needle_haystack"
	}
	store := seedStore(t, lines...)
	q := query.CompileExtended("needle", scorer.CaseSmart, false)
	m := New(store)

	view := runToCompletion(t, m, q, RunOptions{})
	assert.Len(t, view.Results, 3000)
}

func TestStateTransitionsToDone(t *testing.T) {
	store := seedStore(t, "one", "two")
	q := query.CompileExtended("o", scorer.CaseSmart, false)
	m := New(store)
	assert.Equal(t, StateIdle, m.State())

	runToCompletion(t, m, q, RunOptions{})
	assert.Equal(t, StateDone, m.State())
}
