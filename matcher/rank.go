package matcher

import (
	"sort"
	"sync"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/query"
)

const (
	minItemsPerPartition = 64  // each scoring goroutine handles at least this many items.
	maxNumPartitions     = 128 // ceiling on concurrent scoring goroutines per chunk.
)

// scoreChunk scores every item in items against q, dropping non-matches,
// fanning the work out across goroutines the same way as a single chunk's
// worth of scoring. The returned slice is in arrival order; sorting is the
// caller's responsibility.
func scoreChunk(items []item.Item, q *query.Query, generation uint64) []MatchResult {
	n := numPartitions(len(items))
	if n == 1 {
		return scorePartition(items, q, generation)
	}

	partial := make([][]MatchResult, n)
	itemsPerPartition := len(items)/n + 1

	var wg sync.WaitGroup
	p := 0
	for start := 0; start < len(items); start += itemsPerPartition {
		end := start + itemsPerPartition
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(p int, part []item.Item) {
			defer wg.Done()
			partial[p] = scorePartition(part, q, generation)
		}(p, items[start:end])
		p++
	}
	wg.Wait()

	var out []MatchResult
	for _, part := range partial {
		out = append(out, part...)
	}
	return out
}

func numPartitions(numItems int) int {
	n := numItems / minItemsPerPartition
	if n < 1 {
		return 1
	} else if n > maxNumPartitions {
		return maxNumPartitions
	}
	return n
}

func scorePartition(items []item.Item, q *query.Query, generation uint64) []MatchResult {
	out := make([]MatchResult, 0, len(items))
	for _, it := range items {
		if it.Generation != generation {
			continue
		}
		ok, score, positions := q.Match(it.Candidate)
		if !ok {
			continue
		}
		out = append(out, newMatchResult(it.Index, it.Display, score, positions))
	}
	return out
}

// sortChunk orders a freshly scored chunk by tb so mergeSorted can merge it
// with the accumulated view.
func sortChunk(chunk []MatchResult, tb Tiebreak) {
	sort.SliceStable(chunk, func(i, j int) bool {
		return tb.Before(chunk[i], chunk[j])
	})
}

// mergeSorted merges two tb-sorted slices into one tb-sorted slice.
func mergeSorted(a, b []MatchResult, tb Tiebreak) []MatchResult {
	out := make([]MatchResult, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if tb.Before(a[i], b[j]) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func reversed(results []MatchResult) []MatchResult {
	out := make([]MatchResult, len(results))
	for i, r := range results {
		out[len(results)-1-i] = r
	}
	return out
}
