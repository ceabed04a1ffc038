package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/history"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/scorer"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// newBareApp builds an App with just enough state wired up to exercise
// input.Context methods directly, without going through New (which starts
// real Reader/Matcher goroutines and touches the filesystem for history).
func newBareApp(t *testing.T) *App {
	t.Helper()
	store := newTestStore(t, "alpha", "beta", "gamma")

	queryRing, err := history.Load("", history.DefaultSize)
	require.NoError(t, err)
	cmdRing, err := history.Load("", history.DefaultSize)
	require.NoError(t, err)

	a := &App{
		opts:         &config.Options{},
		store:        store,
		model:        selectionmodel.New(true),
		casePolicy:   scorer.CaseSmart,
		queryHistory: queryRing,
		queryNav:     history.NewNavigator(queryRing),
		cmdHistory:   cmdRing,
		cmdNav:       history.NewNavigator(cmdRing),
	}
	a.query, _ = compileQuery("", a.casePolicy, false, false)
	a.view = matcher.RankedView{Results: []matcher.MatchResult{
		{ItemIndex: 2, Display: "gamma"},
		{ItemIndex: 0, Display: "alpha"},
	}}
	return a
}

func TestCurrentItemIndex(t *testing.T) {
	a := newBareApp(t)
	idx, ok := a.CurrentItemIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	a.model.Cursor = 1
	idx, ok = a.CurrentItemIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestCurrentItemIndexEmptyView(t *testing.T) {
	a := newBareApp(t)
	a.view = matcher.RankedView{}
	_, ok := a.CurrentItemIndex()
	assert.False(t, ok)
}

func TestVisibleItemIndices(t *testing.T) {
	a := newBareApp(t)
	assert.Equal(t, []int{2, 0}, a.VisibleItemIndices())
}

func TestHasMatches(t *testing.T) {
	a := newBareApp(t)
	assert.True(t, a.HasMatches())
	a.view = matcher.RankedView{}
	assert.False(t, a.HasMatches())
}

func TestAcceptAppendsQueryHistory(t *testing.T) {
	a := newBareApp(t)
	a.model.Query.SetText("needle")
	a.Accept()

	assert.True(t, a.accepted)
	assert.True(t, a.quit)
	assert.Equal(t, []string{"needle"}, a.queryHistory.Entries())
}

func TestAbort(t *testing.T) {
	a := newBareApp(t)
	a.Abort()
	assert.True(t, a.aborted)
	assert.True(t, a.quit)
	assert.False(t, a.accepted)
}

func TestAppendAndSelectQuery(t *testing.T) {
	a := newBareApp(t)
	a.model.Query.SetText("new-item")

	before := a.store.Len()
	a.AppendAndSelectQuery()

	assert.Equal(t, before+1, a.store.Len())
	it, ok := a.store.At(before)
	require.True(t, ok)
	assert.Equal(t, "new-item", string(it.Raw))
	assert.True(t, a.model.Selected.Contains(before))
}

func TestAppendAndSelectQueryEmptyIsNoop(t *testing.T) {
	a := newBareApp(t)
	before := a.store.Len()
	a.model.Query.SetText("")
	a.AppendAndSelectQuery()
	assert.Equal(t, before, a.store.Len())
}

func TestRefreshPreviewInvalidates(t *testing.T) {
	a := newBareApp(t)
	a.previewValid = true
	a.RefreshPreview()
	assert.False(t, a.previewValid)
}

func TestOnQueryEditedArmsDebounce(t *testing.T) {
	a := newBareApp(t)
	a.model.Query.SetText("abc")
	a.OnQueryEdited()

	require.NotNil(t, a.debounce)
	assert.Equal(t, "abc", a.query.Original)
	assert.Equal(t, -1, a.model.HistoryIndex)
}

func TestPreviousNextHistory(t *testing.T) {
	a := newBareApp(t)
	require.NoError(t, a.queryHistory.Append("first"))
	require.NoError(t, a.queryHistory.Append("second"))
	a.queryNav = history.NewNavigator(a.queryHistory)

	a.PreviousHistory()
	assert.Equal(t, "second", a.model.Query.Text())

	a.PreviousHistory()
	assert.Equal(t, "first", a.model.Query.Text())

	a.NextHistory()
	assert.Equal(t, "second", a.model.Query.Text())
}

func TestPreviousHistoryNilNavigator(t *testing.T) {
	a := newBareApp(t)
	a.queryNav = nil
	assert.NotPanics(t, func() { a.PreviousHistory() })
}

func TestRecompileQueryKeepsPreviousQueryOnRegexError(t *testing.T) {
	a := newBareApp(t)
	a.opts.Regex = true

	a.model.Query.SetText("valid")
	a.recompileQuery()
	require.NoError(t, a.queryErr)
	previous := a.query

	a.model.Query.SetText("(unterminated")
	a.recompileQuery()

	assert.Error(t, a.queryErr)
	assert.Same(t, previous, a.query)
}
