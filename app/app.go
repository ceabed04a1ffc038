// Package app wires the Reader, ItemStore, Matcher, selection model and
// display packages into the single-threaded event loop described by the
// component design: one goroutine owns all mutable state and drains a
// select statement over terminal events, a redraw timer, store-growth
// notifications, Matcher publications and subprocess completions.
package app

import (
	"context"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/display"
	"github.com/colinmarc/skimmer/history"
	"github.com/colinmarc/skimmer/input"
	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/preview"
	"github.com/colinmarc/skimmer/query"
	"github.com/colinmarc/skimmer/reader"
	"github.com/colinmarc/skimmer/scorer"
	"github.com/colinmarc/skimmer/selectionmodel"
)

// tickInterval drives the spinner and the preview/redraw throttle, per the
// component design's "~60Hz" figure.
const tickInterval = time.Second / 60

// Result is what RunEventLoop hands back to main once the session ends.
type Result struct {
	Accepted    bool
	Aborted     bool
	ExpectedKey string
	Lines       []string
	Query       string
	CmdQuery    string
}

// App is the event-loop coordinator: the concrete type behind
// input.Context, and the owner of every long-lived subsystem.
type App struct {
	opts   *config.Options
	screen tcell.Screen

	store *item.Store
	rdr   *reader.Reader
	mtr   *matcher.Matcher

	model   *selectionmodel.Model
	table   *input.Table
	palette *display.Palette
	layout  display.Options

	casePolicy scorer.CasePolicy
	tiebreak   matcher.Tiebreak
	query      *query.Query
	queryErr   error // set while a.query lags a.model.Query.Text() due to a bad regex

	nthRanges     []item.FieldRange
	withNthRanges []item.FieldRange
	delimiter     string

	view matcher.RankedView

	matcherCancel context.CancelFunc
	matcherCh     <-chan matcher.RankedView
	debounce      *time.Timer

	readerCancel context.CancelFunc
	readerDone   chan error

	preSel *preSelector

	previewOpts    preview.Options
	previewResults chan previewJob
	previewCancel  context.CancelFunc
	previewRow     int
	previewValid   bool
	currentPreview preview.Result

	queryHistory *history.Ring
	queryNav     *history.Navigator
	cmdHistory   *history.Ring
	cmdNav       *history.Navigator

	snapshotPath string
	preSelectPat string

	expectKeys map[string]bool

	termEventChan chan tcell.Event
	spinnerTick   int

	quit        bool
	accepted    bool
	aborted     bool
	expectedKey string

	env []string
}

// New constructs an App bound to screen, ready for RunEventLoop.
func New(screen tcell.Screen, opts *config.Options) (*App, error) {
	casePolicy, err := config.CasePolicy(opts.Case)
	if err != nil {
		return nil, err
	}
	tiebreak, err := config.Tiebreak(opts.Tiebreak)
	if err != nil {
		return nil, err
	}
	nthRanges, err := config.NthRanges(opts.Nth)
	if err != nil {
		return nil, err
	}
	withNthRanges, err := config.WithNthRanges(opts.WithNth)
	if err != nil {
		return nil, err
	}

	store := item.NewStore()
	a := &App{
		opts:          opts,
		screen:        screen,
		store:         store,
		rdr:           reader.New(store),
		mtr:           matcher.New(store),
		model:         selectionmodel.New(config.ResolveMultiSelect(*opts)),
		table:         buildTable(opts),
		palette:       display.NewPalette(),
		casePolicy:    casePolicy,
		tiebreak:      tiebreak,
		nthRanges:     nthRanges,
		withNthRanges: withNthRanges,
		delimiter:     opts.Delimiter,
		termEventChan: make(chan tcell.Event, 1),
		env:           os.Environ(),
		expectKeys:    parseExpectKeys(opts.Expect),
	}
	a.layout = buildLayoutOptions(opts)
	a.previewOpts = preview.Options{
		Command:   normalizeReplToken(opts.Preview, opts.ReplToken),
		Delimiter: opts.Delimiter,
		Env:       a.env,
	}
	if pos, percent, offset := parsePreviewWindow(opts.PreviewWindow); opts.Preview != "" {
		a.layout.PreviewPosition = pos
		a.layout.PreviewPercent = percent
		a.previewOpts.OffsetExpr = offset
	}

	a.loadSnapshot(opts)

	a.model.Query.SetText(opts.Query)
	a.model.CmdQuery.SetText(opts.CmdQuery)
	q, err := compileQuery(opts.Query, casePolicy, opts.Exact, opts.Regex)
	if err != nil {
		log.Printf("app: initial query %q failed to compile, starting unfiltered: %v", opts.Query, err)
		q = nil
	}
	a.query = q

	preSel, err := newPreSelector(opts)
	if err != nil {
		log.Printf("pre-selection setup failed: %v", err)
		preSel = &preSelector{}
	}
	a.preSel = preSel
	a.preSelectPat = opts.PreSelectPat

	if err := a.openHistory(); err != nil {
		log.Printf("history setup failed: %v", err)
	}

	return a, nil
}

// loadSnapshot restores the previous session's query, cmd-query and
// pre-select pattern into opts, but only for fields the operator didn't
// already set on the command line; an explicit flag always wins.
func (a *App) loadSnapshot(opts *config.Options) {
	path, err := history.DefaultSnapshotPath()
	if err != nil {
		log.Printf("snapshot path unavailable: %v", err)
		return
	}
	a.snapshotPath = path

	snap, err := history.LoadSnapshot(path)
	if err != nil {
		log.Printf("snapshot load failed: %v", err)
		return
	}
	applySnapshot(opts, snap)
}

// applySnapshot fills the fields of opts the operator left unset from snap.
func applySnapshot(opts *config.Options, snap history.Snapshot) {
	if opts.Query == "" {
		opts.Query = snap.LastQuery
	}
	if opts.CmdQuery == "" {
		opts.CmdQuery = snap.LastCmdQuery
	}
	if opts.PreSelectN == 0 && opts.PreSelectItems == "" && opts.PreSelectPat == "" && opts.PreSelectFile == "" {
		opts.PreSelectPat = snap.LastPreSelectPat
	}
}

func (a *App) openHistory() error {
	historyPath := a.opts.History
	if historyPath == "" {
		if p, err := history.DefaultQueryHistoryPath(); err == nil {
			historyPath = p
		}
	}
	ring, err := history.Load(historyPath, a.opts.HistorySize)
	if err != nil {
		return err
	}
	a.queryHistory = ring
	a.queryNav = history.NewNavigator(ring)

	cmdPath := a.opts.CmdHistory
	if cmdPath == "" {
		if p, err := history.DefaultCmdHistoryPath(); err == nil {
			cmdPath = p
		}
	}
	cmdRing, err := history.Load(cmdPath, a.opts.CmdHistorySize)
	if err != nil {
		return err
	}
	a.cmdHistory = cmdRing
	a.cmdNav = history.NewNavigator(cmdRing)
	return nil
}

// RunEventLoop runs until the session is accepted or aborted, then returns
// the outcome. ctx governs the whole session; canceling it aborts.
func (a *App) RunEventLoop(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.redraw()
	a.screen.Sync()

	go a.pollTermEvents()
	a.startReader(ctx)
	a.restartMatcherFull(ctx)

	a.runMainEventLoop(ctx)
	a.shutdown()

	return a.result(), nil
}

func (a *App) pollTermEvents() {
	for {
		event := a.screen.PollEvent()
		if event == nil {
			return
		}
		a.termEventChan <- event
	}
}

func (a *App) runMainEventLoop(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		var debounceC <-chan time.Time
		if a.debounce != nil {
			debounceC = a.debounce.C
		}

		select {
		case event := <-a.termEventChan:
			a.handleTermEvent(ctx, event)
		case <-ticker.C:
			a.spinnerTick++
			a.maybeRefreshPreview(ctx)
		case <-debounceC:
			a.debounce = nil
			a.restartMatcherFull(ctx)
		case <-a.store.GrowthChan():
			a.onStoreGrew(ctx)
		case view, ok := <-a.matcherCh:
			if !ok {
				a.matcherCh = nil
				continue
			}
			a.onRankedView(view)
		case err := <-a.readerDoneChanOrNil():
			a.onReaderDone(err)
		case job := <-a.previewResultChanOrNil():
			a.onPreviewResult(job)
		case <-ctx.Done():
			log.Printf("app: session context canceled, aborting")
			a.aborted = true
			a.quit = true
		}

		if a.quit {
			log.Printf("app: quit flag set, exiting event loop")
			return
		}
		a.redraw()
	}
}

func (a *App) readerDoneChanOrNil() chan error {
	return a.readerDone
}

func (a *App) previewResultChanOrNil() chan previewJob {
	return a.previewResults
}

func (a *App) handleTermEvent(ctx context.Context, event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	}
}

func (a *App) handleKeyEvent(ctx context.Context, event *tcell.EventKey) {
	name := keyEventName(event)
	if a.expectKeys[name] {
		log.Printf("app: expect key %q pressed, accepting", name)
		a.expectedKey = name
		a.doAccept()
		return
	}

	actions := a.table.Lookup(event)
	if actions == nil {
		if event.Key() == tcell.KeyRune {
			log.Printf("app: self-inserting rune %q", event.Rune())
			a.activeEditBuffer().InsertRune(event.Rune())
			a.onActiveBufferEdited()
		}
		return
	}
	for _, action := range actions {
		log.Printf("app: applying action")
		action(a)
	}
}

// activeEditBuffer returns the buffer plain (unbound) runes are inserted
// into. This is always the query buffer, in --interactive mode too.
func (a *App) activeEditBuffer() *selectionmodel.EditBuffer {
	return a.model.Query
}

func (a *App) onActiveBufferEdited() {
	a.OnQueryEdited()
}

func (a *App) shutdown() {
	if a.matcherCancel != nil {
		a.matcherCancel()
	}
	if a.readerCancel != nil {
		a.readerCancel()
	}
	if a.previewCancel != nil {
		a.previewCancel()
	}
	a.saveSnapshot()
}

// saveSnapshot persists the session's final query state so the next
// invocation can pick up where this one left off.
func (a *App) saveSnapshot() {
	if a.snapshotPath == "" {
		return
	}
	snap := history.Snapshot{
		LastQuery:        a.model.Query.Text(),
		LastCmdQuery:     a.model.CmdQuery.Text(),
		LastPreSelectPat: a.preSelectPat,
	}
	if err := history.SaveSnapshot(a.snapshotPath, snap); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

func (a *App) redraw() {
	a.screen.Clear()
	display.DrawFrame(a.screen, a.palette, a.layout, display.Frame{
		Store:        a.store,
		Results:      a.view.Results,
		Model:        a.model,
		Status:       a.statusInfo(),
		PreviewLines: a.currentPreview.Lines,
		PreviewLine:  a.currentPreview.ScrollLine,
	})
	a.screen.Show()
}

func (a *App) statusInfo() display.StatusInfo {
	spinning := a.mtr.State() == matcher.StateRunning || a.readerDone != nil
	return display.StatusInfo{
		Spinning:    spinning,
		SpinnerTick: a.spinnerTick,
		MatchCount:  len(a.view.Results),
		ItemCount:   a.store.Len(),
		SelectCount: a.model.Selected.Len(),
		ItemCursor:  a.model.Cursor,
		// HscrollCol is filled in by display.DrawFrame from the cursor
		// row's actual elision offset once the result list has been laid
		// out; a.statusInfo runs before that, so this is just a default.
		HscrollCol: 0,
		Finished:   !spinning,
	}
}

func (a *App) result() Result {
	r := Result{
		Accepted:    a.accepted,
		Aborted:     a.aborted,
		ExpectedKey: a.expectedKey,
		Query:       a.model.Query.Text(),
		CmdQuery:    a.model.CmdQuery.Text(),
	}
	if a.accepted {
		r.Lines = a.selectedLines()
	}
	return r
}

func (a *App) selectedLines() []string {
	selected := a.model.SelectedInOrder()
	if len(selected) == 0 {
		if idx, ok := a.CurrentItemIndex(); ok {
			selected = []int{idx}
		}
	}
	lines := make([]string, 0, len(selected))
	for _, idx := range selected {
		if it, ok := a.store.At(idx); ok {
			lines = append(lines, string(it.Raw))
		}
	}
	return lines
}

// compileQuery compiles text into a Query. In --regex mode a compile
// failure is returned as an error rather than silently reinterpreted as an
// extended-syntax query: the caller must keep whatever query was already
// active rather than start matching against the broken text literally.
func compileQuery(text string, casePolicy scorer.CasePolicy, exact, useRegex bool) (*query.Query, error) {
	if useRegex {
		return query.CompileRegex(text, casePolicy)
	}
	return query.CompileExtended(text, casePolicy, exact), nil
}

func normalizeReplToken(command, token string) string {
	if token == "" || token == "{}" || command == "" {
		return command
	}
	return regexp.MustCompile(regexp.QuoteMeta(token)).ReplaceAllString(command, "{}")
}

func buildTable(opts *config.Options) *input.Table {
	t := input.DefaultTable()
	for _, spec := range opts.Bind {
		if err := input.ParseBindSpecs(t, spec); err != nil {
			log.Printf("app: ignoring bad --bind %q: %v", spec, err)
		}
	}
	return t
}

func parseExpectKeys(spec string) map[string]bool {
	if spec == "" {
		return nil
	}
	keys := make(map[string]bool)
	for _, part := range splitComma(spec) {
		if part != "" {
			keys[part] = true
		}
	}
	return keys
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
