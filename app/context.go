package app

import (
	"context"
	"log"
	"time"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/preview"
	"github.com/colinmarc/skimmer/selectionmodel"
	"github.com/colinmarc/skimmer/shell"
)

// Model implements input.Context.
func (a *App) Model() *selectionmodel.Model {
	return a.model
}

// VisibleItemIndices implements input.Context.
func (a *App) VisibleItemIndices() []int {
	indices := make([]int, len(a.view.Results))
	for i, r := range a.view.Results {
		indices[i] = r.ItemIndex
	}
	return indices
}

// CurrentItemIndex implements input.Context.
func (a *App) CurrentItemIndex() (int, bool) {
	if a.model.Cursor < 0 || a.model.Cursor >= len(a.view.Results) {
		return 0, false
	}
	return a.view.Results[a.model.Cursor].ItemIndex, true
}

// HasMatches implements input.Context.
func (a *App) HasMatches() bool {
	return len(a.view.Results) > 0
}

// OnQueryEdited implements input.Context: it (re)compiles the query and
// arms the debounce timer, rather than restarting the Matcher immediately,
// so a burst of keystrokes coalesces into a single restart.
func (a *App) OnQueryEdited() {
	if a.queryNav != nil {
		a.queryNav.Reset()
	}
	a.model.HistoryIndex = -1
	a.recompileQuery()
}

// recompileQuery recompiles the query and (re)arms the debounce timer,
// without touching history-navigation state. Typed edits reset that state
// in OnQueryEdited; history browsing manages it itself in
// PreviousHistory/NextHistory.
//
// A compile failure (only possible in --regex mode, against incomplete
// regex syntax) leaves the previously active query in place and records
// the error rather than matching against the broken text: matching
// continues against the old query until the operator finishes typing a
// valid one.
func (a *App) recompileQuery() {
	q, err := compileQuery(a.model.Query.Text(), a.casePolicy, a.opts.Exact, a.opts.Regex)
	if err != nil {
		a.queryErr = err
		log.Printf("app: regex compile failed, keeping previous query: %v", err)
	} else {
		a.queryErr = nil
		a.query = q
	}
	if a.debounce == nil {
		a.debounce = time.NewTimer(matcher.DebounceWindow)
	} else {
		a.debounce.Reset(matcher.DebounceWindow)
	}
}

// OnCmdQueryEdited implements input.Context: a cmd-query change starts a
// fresh Reader generation against the new command.
func (a *App) OnCmdQueryEdited() {
	if a.cmdNav != nil {
		a.cmdNav.Reset()
	}
	if a.readerCancel != nil {
		a.readerCancel()
	}
	a.preSel.applied = 0
	a.startReader(context.Background())
}

// Accept implements input.Context.
func (a *App) Accept() {
	a.doAccept()
}

func (a *App) doAccept() {
	log.Printf("app: accepting selection")
	if a.queryHistory != nil {
		if err := a.queryHistory.Append(a.model.Query.Text()); err != nil {
			log.Printf("app: query history append failed: %v", err)
		}
	}
	if a.cmdHistory != nil && a.opts.Interactive {
		if err := a.cmdHistory.Append(a.model.CmdQuery.Text()); err != nil {
			log.Printf("app: cmd history append failed: %v", err)
		}
	}
	a.accepted = true
	a.quit = true
}

// Abort implements input.Context.
func (a *App) Abort() {
	log.Printf("app: aborting")
	a.aborted = true
	a.quit = true
}

// RefreshPreview implements input.Context.
func (a *App) RefreshPreview() {
	a.previewValid = false
}

// Execute implements input.Context: it suspends the screen, hands the
// terminal to the shell for cmd's duration (with placeholders expanded
// against the cursor row), then resumes and forces a full redraw.
func (a *App) Execute(cmd string) {
	candidate := ""
	if idx, ok := a.CurrentItemIndex(); ok {
		if it, ok := a.store.At(idx); ok {
			candidate = it.Candidate
		}
	}
	expanded := expandExecuteTemplate(cmd, candidate, a.delimiter, a.opts.ReplToken)

	if err := a.screen.Suspend(); err != nil {
		log.Printf("app: screen.Suspend failed: %v", err)
		return
	}
	if err := shell.NewCmd(expanded).Run(); err != nil {
		log.Printf("app: execute(%q) failed: %v", expanded, err)
	}
	if err := a.screen.Resume(); err != nil {
		log.Printf("app: screen.Resume failed: %v", err)
	}
	a.screen.Sync()
}

// AppendAndSelectQuery implements input.Context: the current query text
// becomes a new item at the end of the store (under the store's current
// generation) and is immediately selected, mirroring skim's append mode.
func (a *App) AppendAndSelectQuery() {
	text := a.model.Query.Text()
	if text == "" {
		return
	}
	idx := a.store.Len()
	it := item.New(idx, []byte(text), a.store.Generation(), a.delimiter, a.nthRanges, a.withNthRanges)
	a.store.Append(it)
	a.model.Selected.Add(idx)
}

// PreviousHistory implements input.Context.
func (a *App) PreviousHistory() {
	if a.queryNav == nil {
		return
	}
	if text, ok := a.queryNav.Previous(); ok {
		a.model.Query.SetText(text)
		a.model.HistoryIndex = 0
		a.recompileQuery()
	}
}

// NextHistory implements input.Context.
func (a *App) NextHistory() {
	if a.queryNav == nil {
		return
	}
	if text, ok := a.queryNav.Next(); ok {
		a.model.Query.SetText(text)
		if text == "" {
			a.model.HistoryIndex = -1
		}
		a.recompileQuery()
	}
}

func expandExecuteTemplate(template, candidate, delim, replToken string) string {
	normalized := normalizeReplToken(template, replToken)
	return preview.ExpandPlaceholders(normalized, candidate, delim)
}
