package input

import (
	"github.com/gdamore/tcell/v2"
)

// EventMatcher matches an input key event.
type EventMatcher struct {
	Wildcard bool      // If true, matches every input key.
	Key      tcell.Key // The kind of key to match (usually tcell.KeyRune).
	Rune     rune      // If Key is tcell.KeyRune, match this rune too.
	Mod      tcell.ModMask
}

// Matches returns whether the input event is a match.
func (em EventMatcher) Matches(event *tcell.EventKey) bool {
	if em.Wildcard {
		return true
	}
	if event.Key() != em.Key {
		return false
	}
	if em.Key == tcell.KeyRune && event.Rune() != em.Rune {
		return false
	}
	if em.Mod != 0 && event.Modifiers()&em.Mod == 0 {
		return false
	}
	return true
}

// fingerprint is a comparable key used to deduplicate bindings so a later
// --bind for the same key event replaces an earlier one instead of
// appending to it.
func (em EventMatcher) fingerprint() eventMatcherKey {
	return eventMatcherKey{em.Wildcard, em.Key, em.Rune, em.Mod}
}

type eventMatcherKey struct {
	wildcard bool
	key      tcell.Key
	r        rune
	mod      tcell.ModMask
}
