// Package matcher implements the concurrent ranking engine: it scores an
// ItemStore's contents against a Query in fixed-size chunks, merges the
// per-chunk results into a single ordered RankedView, and publishes that
// view incrementally so the UI can render partial progress. A run is
// canceled by its context; canceled work never publishes.
package matcher

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/query"
)

// ChunkSize is the unit of work claimed and scored between cancellation
// checks.
const ChunkSize = 1024

// DebounceWindow is how long the event loop waits after the last query
// edit before canceling the in-flight run (if any) and starting a new one.
const DebounceWindow = 15 * time.Millisecond

// State is the Matcher's externally observable status.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "idle"
	}
}

// Matcher scores one ItemStore's contents against successive queries. It
// holds no result state between runs beyond the last RankedView handed back
// to the caller; the caller is responsible for feeding that view back in as
// Resume on the next Run if it wants incremental re-ranking rather than a
// full restart (e.g. when only new items arrived, not a new query).
type Matcher struct {
	store *item.Store

	state      int32 // atomic State
	generation uint64
}

// New constructs a Matcher bound to store.
func New(store *item.Store) *Matcher {
	return &Matcher{store: store}
}

// State reports the Matcher's current status.
func (m *Matcher) State() State {
	return State(atomic.LoadInt32(&m.state))
}

// RunOptions configures one Matcher run.
type RunOptions struct {
	Tiebreak Tiebreak
	NoSort   bool
	Tac      bool

	// Resume, if non-nil, is a previous RankedView computed against the
	// same Query and item generation; the run scores only items at or
	// beyond Resume.ProcessedUpTo and merges into Resume.Results rather
	// than rescoring everything. Pass nil to force a full rescan (always
	// required when the Query itself changed).
	Resume *RankedView
}

// Run scores the store's items against q, publishing a RankedView on the
// returned channel after each chunk and once more (with Finished set) when
// the store is exhausted. The channel is closed when the run ends, whether
// by completion, cancellation, or a worker panic. A canceled run closes the
// channel without any further publication.
func (m *Matcher) Run(ctx context.Context, q *query.Query, opts RunOptions) <-chan RankedView {
	out := make(chan RankedView, 1)
	tb := opts.Tiebreak
	if tb == nil {
		tb = DefaultTiebreak
	}

	generation := m.store.Generation()
	atomic.StoreUint64(&m.generation, generation)
	atomic.StoreInt32(&m.state, int32(StateRunning))

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				atomic.StoreInt32(&m.state, int32(StateIdle))
				select {
				case out <- RankedView{Finished: true, Err: panicError{r}}:
				case <-ctx.Done():
				}
			}
		}()

		view := m.run(ctx, q, tb, opts, out)
		if view == nil {
			// Canceled: no terminal publication.
			atomic.StoreInt32(&m.state, int32(StateIdle))
			return
		}
		atomic.StoreInt32(&m.state, int32(StateDone))
	}()

	return out
}

func (m *Matcher) run(ctx context.Context, q *query.Query, tb Tiebreak, opts RunOptions, out chan<- RankedView) *RankedView {
	var results []MatchResult
	processed := 0
	// Resume reuses a prior accumulation, which is only valid if that
	// accumulation was stored in natural (non-tac) order; since a tac run
	// publishes already-reversed views, resuming across a tac run would
	// require un-reversing first, so a tac request always does a full
	// rescan instead.
	if opts.Resume != nil && !opts.Tac {
		results = opts.Resume.Results
		processed = opts.Resume.ProcessedUpTo
	}

	generation := atomic.LoadUint64(&m.generation)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		total := m.store.Len()
		if processed >= total {
			break
		}
		end := processed + ChunkSize
		if end > total {
			end = total
		}
		chunk := m.store.Slice(processed, end)
		processed = end

		scored := scoreChunk(chunk, q, generation)
		if !opts.NoSort {
			sortChunk(scored, tb)
			results = mergeSorted(results, scored, tb)
		} else {
			results = append(results, scored...)
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		view := RankedView{
			QueryFingerprint: q.Original,
			Results:          publishOrder(results, opts),
			ProcessedUpTo:    processed,
			Finished:         false,
		}
		select {
		case out <- view:
		case <-ctx.Done():
			return nil
		}
	}

	final := RankedView{
		QueryFingerprint: q.Original,
		Results:          publishOrder(results, opts),
		ProcessedUpTo:    processed,
		Finished:         true,
	}
	select {
	case out <- final:
	case <-ctx.Done():
		return nil
	}
	return &final
}

// publishOrder applies --tac to the accumulated results without mutating
// the accumulator itself (tac flips the view on every publication, but the
// merge/append accumulator above always stays in natural order so resuming
// a later chunk doesn't have to un-reverse first).
func publishOrder(results []MatchResult, opts RunOptions) []MatchResult {
	if !opts.Tac {
		return results
	}
	return reversed(results)
}

// panicError wraps a recovered panic value as an error.
type panicError struct {
	v interface{}
}

func (p panicError) Error() string {
	return "matcher: worker panic recovered"
}
