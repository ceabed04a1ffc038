// Package scorer implements the fuzzy and exact scoring algorithms used to
// rank candidates against a query sub-pattern. It is a pure, deterministic,
// thread-safe function of (query, candidate): the same inputs always
// produce the same (score, positions) pair, and scoring never mutates its
// arguments.
package scorer

import "math"

// Bonus and penalty constants, collected here per the spec's request that
// a reimplementation make them named constants in one place.
const (
	BonusBoundary    = 16 // match immediately after a word/path/separator boundary.
	BonusCamel       = 8  // match at a lower->upper camelCase transition.
	BonusConsecutive = 8  // match immediately continues the previous match.
	PenaltySkip      = 3  // per skipped candidate character between two matches.
	PenaltyLeadGap   = 1  // flat penalty when the match does not start at index 0.
)

// MinScore is a floor sentinel: every genuine match scores strictly above
// it, so MIN_SCORE can be used as an "absent" value in a RankedView.
const MinScore = math.MinInt32

// Result is the outcome of scoring one candidate against one sub-pattern.
type Result struct {
	Score     int
	Positions []int // rune offsets into candidate, sorted ascending, unique.
}

// Fuzzy performs a character-by-character skip match: every rune of query
// must appear, in order, somewhere in candidate. It returns ok=false if
// the candidate does not contain query as a subsequence.
func Fuzzy(query, candidate []rune, policy CasePolicy) (Result, bool) {
	if len(query) == 0 {
		return Result{}, false
	}

	fold := foldForQuery(policy, query)

	forwardPositions, ok := greedyAssign(query, candidate, fold, 0, len(candidate), false)
	if !ok {
		return Result{}, false
	}
	matchEnd := forwardPositions[len(forwardPositions)-1]

	start := tightenStart(query, candidate, fold, matchEnd)
	positions, ok := greedyAssign(query, candidate, fold, start, matchEnd+1, false)
	if !ok {
		// Should not happen: the window [start, matchEnd] was constructed
		// to contain a valid assignment.
		positions = forwardPositions
	}

	return Result{Score: computeScore(candidate, positions), Positions: positions}, true
}

// ExactMode selects the constraint used by the Exact scorer.
type ExactMode int

const (
	ExactPrefix ExactMode = iota
	ExactSuffix
	ExactEqual
	ExactSubstring
)

// Exact checks candidate for a contiguous run equal to query under the
// given constraint, returning the matched rune range as positions.
func Exact(query, candidate []rune, policy CasePolicy, mode ExactMode) (Result, bool) {
	if len(query) == 0 {
		return Result{}, false
	}
	fold := foldForQuery(policy, query)

	var idx int
	var found bool
	switch mode {
	case ExactPrefix:
		if len(candidate) >= len(query) && runesEqual(candidate[:len(query)], query, fold) {
			idx, found = 0, true
		}
	case ExactSuffix:
		if len(candidate) >= len(query) && runesEqual(candidate[len(candidate)-len(query):], query, fold) {
			idx, found = len(candidate)-len(query), true
		}
	case ExactEqual:
		if len(candidate) == len(query) && runesEqual(candidate, query, fold) {
			idx, found = 0, true
		}
	default: // ExactSubstring
		idx, found = indexRunes(candidate, query, fold)
	}

	if !found {
		return Result{}, false
	}

	positions := make([]int, len(query))
	for i := range positions {
		positions[i] = idx + i
	}
	return Result{Score: computeScore(candidate, positions), Positions: positions}, true
}

// greedyAssign scans candidate[lo:hi] left to right (or right to left if
// reverse is true) and greedily assigns the earliest (or latest) occurrence
// of each query rune in order. Positions are absolute indices into
// candidate.
func greedyAssign(query, candidate []rune, fold bool, lo, hi int, reverse bool) ([]int, bool) {
	positions := make([]int, 0, len(query))
	qi := 0
	for i := lo; i < hi && qi < len(query); i++ {
		if runeEqual(candidate[i], query[qi], fold) {
			positions = append(positions, i)
			qi++
		}
	}
	return positions, qi == len(query)
}

// tightenStart scans backward from matchEnd to find the smallest window
// [start, matchEnd] that still contains the full query as a subsequence.
func tightenStart(query, candidate []rune, fold bool, matchEnd int) int {
	qi := len(query) - 1
	start := matchEnd
	for i := matchEnd; i >= 0 && qi >= 0; i-- {
		if runeEqual(candidate[i], query[qi], fold) {
			start = i
			qi--
		}
	}
	return start
}

// ScorePositions computes the bonus/penalty score for a pre-determined set
// of matched rune positions. Exported so other packages (e.g. query, for
// its --regex mode) can reuse the same scoring formula for matches they
// locate by other means.
func ScorePositions(candidate []rune, positions []int) int {
	return computeScore(candidate, positions)
}

func computeScore(candidate []rune, positions []int) int {
	score := 0
	for i, pos := range positions {
		if i > 0 {
			gap := pos - positions[i-1] - 1
			score -= PenaltySkip * gap
			if pos == positions[i-1]+1 {
				score += BonusConsecutive
			}
		}

		var before rune
		if pos > 0 {
			before = candidate[pos-1]
		}
		if isBoundary(before) {
			score += BonusBoundary
		} else if isCamelTransition(before, candidate[pos]) {
			score += BonusCamel
		}
	}
	if len(positions) > 0 && positions[0] > 0 {
		score -= PenaltyLeadGap
	}
	return score
}

func runesEqual(a, b []rune, fold bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !runeEqual(a[i], b[i], fold) {
			return false
		}
	}
	return true
}

func indexRunes(haystack, needle []rune, fold bool) (int, bool) {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return 0, false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if runesEqual(haystack[i:i+len(needle)], needle, fold) {
			return i, true
		}
	}
	return 0, false
}
