// Package query parses the operator's filter expression into a sequence of
// sub-patterns and evaluates them against candidate text, delegating the
// per-pattern scoring to the scorer package.
package query

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/colinmarc/skimmer/scorer"
)

// Mode identifies how one pattern atom is matched against a candidate.
type Mode int

const (
	ModeFuzzy Mode = iota
	ModeExactSubstring
	ModeExactPrefix
	ModeExactSuffix
	ModeExactEqual
)

// Atom is one alternative within a sub-pattern's OR group.
type Atom struct {
	Term    string
	Runes   []rune
	Mode    Mode
	Inverse bool
}

// SubPattern is one whitespace-separated AND-term, possibly containing
// several '|'-separated OR alternatives.
type SubPattern struct {
	Alternatives []Atom
}

// Query is a compiled filter expression: either a sequence of AND'd
// SubPatterns (extended syntax, the default) or a single compiled regular
// expression (--regex mode).
type Query struct {
	Original    string
	CasePolicy  scorer.CasePolicy
	SubPatterns []SubPattern
	Regex       *regexp.Regexp
}

// IsEmpty reports whether the query has no filtering effect.
func (q *Query) IsEmpty() bool {
	if q == nil {
		return true
	}
	if q.Regex != nil {
		return q.Original == ""
	}
	return len(q.SubPatterns) == 0
}

// CompileExtended parses the extended search syntax described in the
// component design: whitespace-separated AND-terms, '!' inverse,
// leading quote for exact substring, '^'/'$' for prefix/suffix/equal, '|'
// for OR within a term, and a backslash before a space for a literal
// space. If exactAll is set (the --exact/-e flag), every atom that did not
// explicitly request an exact mode is upgraded from fuzzy to exact
// substring matching.
func CompileExtended(text string, casePolicy scorer.CasePolicy, exactAll bool) *Query {
	q := &Query{Original: text, CasePolicy: casePolicy}
	for _, field := range splitUnescapedSpaces(text) {
		if field == "" {
			continue
		}
		var sp SubPattern
		for _, alt := range strings.Split(field, "|") {
			if alt == "" {
				continue
			}
			atom := parseAtom(alt)
			if exactAll && atom.Mode == ModeFuzzy {
				atom.Mode = ModeExactSubstring
			}
			sp.Alternatives = append(sp.Alternatives, atom)
		}
		if len(sp.Alternatives) > 0 {
			q.SubPatterns = append(q.SubPatterns, sp)
		}
	}
	return q
}

// CompileRegex compiles the entire query text as a regular expression. If
// compilation fails, the caller should keep its previous Query (per the
// error-handling design, a bad regex never becomes fatal).
func CompileRegex(text string, casePolicy scorer.CasePolicy) (*Query, error) {
	pattern := text
	if casePolicy == scorer.CaseIgnore || (casePolicy == scorer.CaseSmart && !hasUpper(text)) {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Query{Original: text, CasePolicy: casePolicy, Regex: re}, nil
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Match evaluates the query against one candidate string, returning the
// total score and the union of matched rune positions. A false ok means
// the candidate does not pass the query.
func (q *Query) Match(candidate string) (ok bool, score int, positions []int) {
	if q == nil {
		return true, 0, nil
	}
	cr := []rune(norm.NFC.String(candidate))

	if q.Regex != nil {
		return matchRegex(q.Regex, candidate, cr)
	}

	if len(q.SubPatterns) == 0 {
		return true, 0, nil
	}

	total := 0
	seen := make(map[int]struct{})
	for _, sp := range q.SubPatterns {
		spOK, spScore, spPositions := sp.evaluate(cr, q.CasePolicy)
		if !spOK {
			return false, 0, nil
		}
		total += spScore
		for _, p := range spPositions {
			seen[p] = struct{}{}
		}
	}

	positions = make([]int, 0, len(seen))
	for p := range seen {
		positions = append(positions, p)
	}
	sortInts(positions)
	return true, total, positions
}

func (sp SubPattern) evaluate(candidate []rune, policy scorer.CasePolicy) (bool, int, []int) {
	var hasPositive, foundPositive, haveBest bool
	var bestScore int
	var bestPositions []int

	for _, atom := range sp.Alternatives {
		matched, res := atom.match(candidate, policy)
		if atom.Inverse {
			if matched {
				return false, 0, nil
			}
			continue
		}
		hasPositive = true
		if matched {
			foundPositive = true
			if !haveBest || res.Score > bestScore {
				bestScore = res.Score
				bestPositions = res.Positions
				haveBest = true
			}
		}
	}

	if hasPositive && !foundPositive {
		return false, 0, nil
	}
	return true, bestScore, bestPositions
}

func (a Atom) match(candidate []rune, policy scorer.CasePolicy) (bool, scorer.Result) {
	query := a.Runes
	switch a.Mode {
	case ModeExactSubstring:
		res, ok := scorer.Exact(query, candidate, policy, scorer.ExactSubstring)
		return ok, res
	case ModeExactPrefix:
		res, ok := scorer.Exact(query, candidate, policy, scorer.ExactPrefix)
		return ok, res
	case ModeExactSuffix:
		res, ok := scorer.Exact(query, candidate, policy, scorer.ExactSuffix)
		return ok, res
	case ModeExactEqual:
		res, ok := scorer.Exact(query, candidate, policy, scorer.ExactEqual)
		return ok, res
	default:
		res, ok := scorer.Fuzzy(query, candidate, policy)
		return ok, res
	}
}

func matchRegex(re *regexp.Regexp, raw string, cr []rune) (bool, int, []int) {
	loc := re.FindStringIndex(raw)
	if loc == nil {
		return false, 0, nil
	}
	startRune := len([]rune(raw[:loc[0]]))
	endRune := len([]rune(raw[:loc[1]]))
	positions := make([]int, 0, endRune-startRune)
	for i := startRune; i < endRune; i++ {
		positions = append(positions, i)
	}
	return true, scorer.ScorePositions(cr, positions), positions
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
