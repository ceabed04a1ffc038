package matcher

import (
	"fmt"
	"strings"
)

// TiebreakKey names one component of the ordering tuple used to break score
// ties between two MatchResults.
type TiebreakKey int

const (
	KeyScore TiebreakKey = iota
	KeyBegin
	KeyEnd
	KeyLength
	KeyIndex
)

func (k TiebreakKey) String() string {
	switch k {
	case KeyScore:
		return "score"
	case KeyBegin:
		return "begin"
	case KeyEnd:
		return "end"
	case KeyLength:
		return "length"
	case KeyIndex:
		return "index"
	default:
		return "unknown"
	}
}

// TiebreakComponent is one key in the chain, with an optional sign flip.
type TiebreakComponent struct {
	Key    TiebreakKey
	Negate bool
}

// Tiebreak is an ordered chain of components. A MatchResult ranks ahead of
// another when, at the first component where they differ, its value (after
// any negation) is strictly greater.
type Tiebreak []TiebreakComponent

// DefaultTiebreak is (score, begin, end, -length, index), matching the
// tuple used when --tiebreak is not given.
var DefaultTiebreak = Tiebreak{
	{KeyScore, false},
	{KeyBegin, false},
	{KeyEnd, false},
	{KeyLength, true},
	{KeyIndex, false},
}

// ParseTiebreak parses a comma-separated chain such as "score,-length,index".
// A leading '-' on a key negates it relative to the key's natural meaning.
func ParseTiebreak(s string) (Tiebreak, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultTiebreak, nil
	}
	var tb Tiebreak
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		negate := false
		if strings.HasPrefix(part, "-") {
			negate = true
			part = part[1:]
		}
		var key TiebreakKey
		switch part {
		case "score":
			key = KeyScore
		case "begin":
			key = KeyBegin
		case "end":
			key = KeyEnd
		case "length":
			key = KeyLength
		case "index":
			key = KeyIndex
		default:
			return nil, fmt.Errorf("matcher: unknown tiebreak key %q", part)
		}
		tb = append(tb, TiebreakComponent{Key: key, Negate: negate})
	}
	if len(tb) == 0 {
		return DefaultTiebreak, nil
	}
	return tb, nil
}

func componentValue(r MatchResult, key TiebreakKey) int {
	switch key {
	case KeyScore:
		return r.Score
	case KeyBegin:
		return r.Begin
	case KeyEnd:
		return r.End
	case KeyLength:
		return r.Length
	case KeyIndex:
		return r.ItemIndex
	default:
		return 0
	}
}

// Before reports whether a ranks strictly ahead of b under tb: at the first
// differing component, a's (possibly negated) value is greater.
func (tb Tiebreak) Before(a, b MatchResult) bool {
	for _, c := range tb {
		av, bv := componentValue(a, c.Key), componentValue(b, c.Key)
		if c.Negate {
			av, bv = -av, -bv
		}
		if av != bv {
			return av > bv
		}
	}
	return false
}
