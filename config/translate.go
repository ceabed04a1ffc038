package config

import (
	"fmt"

	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/scorer"
)

// CasePolicy translates --case's value into a scorer.CasePolicy.
func CasePolicy(s string) (scorer.CasePolicy, error) {
	switch s {
	case "", "smart":
		return scorer.CaseSmart, nil
	case "ignore":
		return scorer.CaseIgnore, nil
	case "respect":
		return scorer.CaseRespect, nil
	default:
		return 0, fmt.Errorf("config: unknown --case value %q", s)
	}
}

// Tiebreak translates --tiebreak's value into a matcher.Tiebreak.
func Tiebreak(s string) (matcher.Tiebreak, error) {
	return matcher.ParseTiebreak(s)
}

// NthRanges translates --nth's value into item.FieldRange slices.
func NthRanges(s string) ([]item.FieldRange, error) {
	if s == "" {
		return nil, nil
	}
	return item.ParseFieldRanges(s)
}

// WithNthRanges translates --with-nth's value into item.FieldRange slices.
func WithNthRanges(s string) ([]item.FieldRange, error) {
	if s == "" {
		return nil, nil
	}
	return item.ParseFieldRanges(s)
}
