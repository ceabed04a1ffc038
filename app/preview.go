package app

import (
	"context"
	"log"

	"github.com/colinmarc/skimmer/preview"
)

// previewJob is what a preview render goroutine reports back.
type previewJob struct {
	row    int
	result preview.Result
	err    error
}

// maybeRefreshPreview runs on every tick: if the cursor has moved to a new
// row (or RefreshPreview forced invalidation) since the last render, it
// cancels any in-flight preview and starts a new one.
func (a *App) maybeRefreshPreview(ctx context.Context) {
	if a.previewOpts.Command == "" {
		return
	}
	idx, ok := a.CurrentItemIndex()
	if !ok {
		return
	}
	if a.previewValid && idx == a.previewRow {
		return
	}

	it, ok := a.store.At(idx)
	if !ok {
		return
	}

	if a.previewCancel != nil {
		a.previewCancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	a.previewCancel = cancel
	a.previewRow = idx
	a.previewValid = true

	if a.previewResults == nil {
		a.previewResults = make(chan previewJob, 1)
	}
	results := a.previewResults

	log.Printf("app: rendering preview for row %d", idx)
	go func() {
		res, err := preview.Render(runCtx, it, a.previewOpts)
		select {
		case results <- previewJob{row: idx, result: res, err: err}:
		case <-runCtx.Done():
		}
	}()
}

func (a *App) onPreviewResult(job previewJob) {
	if job.row != a.previewRow {
		// Stale: the cursor moved again before this result arrived.
		return
	}
	if job.err != nil {
		log.Printf("app: preview render failed: %v", job.err)
		a.currentPreview = preview.Result{Lines: []string{job.err.Error()}}
		return
	}
	a.currentPreview = job.result
}
