package app

import (
	"context"
	"log"

	"github.com/colinmarc/skimmer/matcher"
)

// restartMatcherFull cancels any in-flight run and starts a fresh one that
// rescans the whole store, as required whenever the query itself changes.
func (a *App) restartMatcherFull(ctx context.Context) {
	if a.matcherCancel != nil {
		a.matcherCancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	a.matcherCancel = cancel
	log.Printf("app: starting matcher run (full rescan)")
	a.matcherCh = a.mtr.Run(runCtx, a.query, matcher.RunOptions{
		Tiebreak: a.tiebreak,
		NoSort:   a.opts.NoSort,
		Tac:      a.opts.Tac,
	})
}

// onStoreGrew handles new items arriving from the Reader. If a Matcher run
// is already in flight it will observe the growth on its own next chunk
// boundary (it reads the store's length fresh every iteration); only a
// Matcher that has already gone idle needs an explicit resume.
func (a *App) onStoreGrew(ctx context.Context) {
	a.preSel.apply(a.store, a.model)
	if a.mtr.State() == matcher.StateRunning {
		return
	}
	resume := a.view
	runCtx, cancel := context.WithCancel(ctx)
	a.matcherCancel = cancel
	log.Printf("app: resuming matcher run after store growth")
	a.matcherCh = a.mtr.Run(runCtx, a.query, matcher.RunOptions{
		Tiebreak: a.tiebreak,
		NoSort:   a.opts.NoSort,
		Tac:      a.opts.Tac,
		Resume:   &resume,
	})
}

func (a *App) onRankedView(view matcher.RankedView) {
	if view.Err != nil {
		log.Printf("app: matcher error: %v", view.Err)
		return
	}
	a.view = view
	a.model.ClampCursor(len(view.Results))
	if view.Finished {
		log.Printf("app: matcher run finished with %d matches", len(view.Results))
		if a.opts.Select1 && len(view.Results) == 1 {
			a.model.Cursor = 0
			a.doAccept()
		}
		if a.opts.Exit0 && len(view.Results) == 0 {
			a.quit = true
		}
	}
}
