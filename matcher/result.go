package matcher

// MatchResult is one item that passed the current query, together with the
// data its tiebreak tuple is computed from.
type MatchResult struct {
	ItemIndex int    // index into the ItemStore.
	Display   string // the text shown in the result list.
	Score     int
	Positions []int // sorted, unique rune offsets into the item's Candidate (equal to Display when no --nth/--with-nth is set).
	Begin     int    // positions[0], or 0 when Positions is empty.
	End       int    // positions[len-1]+1, or 0 when Positions is empty.
	Length    int    // rune length of Display.
}

func newMatchResult(itemIndex int, display string, score int, positions []int) MatchResult {
	r := MatchResult{
		ItemIndex: itemIndex,
		Display:   display,
		Score:     score,
		Positions: positions,
		Length:    len([]rune(display)),
	}
	if len(positions) > 0 {
		r.Begin = positions[0]
		r.End = positions[len(positions)-1] + 1
	}
	return r
}

// RankedView is the Matcher's published output: a snapshot of the current
// ranking, replaced atomically as matching progresses.
type RankedView struct {
	QueryFingerprint string
	Results          []MatchResult
	ProcessedUpTo    int
	Finished         bool
	Err              error
}

// Len reports the number of matches currently in the view.
func (v RankedView) Len() int {
	return len(v.Results)
}
