package input

import "github.com/gdamore/tcell/v2"

// Binding pairs a key event matcher with the actions it triggers.
type Binding struct {
	Matcher EventMatcher
	Actions []Action
}

// Table is an ordered set of Bindings, keyed so that a later binding for
// the same key event replaces an earlier one rather than appending to it
// (matching "user additions override defaults").
type Table struct {
	order []eventMatcherKey
	byKey map[eventMatcherKey]Binding
}

// NewTable constructs an empty Table.
func NewTable() *Table {
	return &Table{byKey: make(map[eventMatcherKey]Binding)}
}

// Bind adds or replaces the binding for matcher.
func (t *Table) Bind(matcher EventMatcher, actions ...Action) {
	key := matcher.fingerprint()
	if _, exists := t.byKey[key]; !exists {
		t.order = append(t.order, key)
	}
	t.byKey[key] = Binding{Matcher: matcher, Actions: actions}
}

// Lookup returns the actions bound to event, trying specific matchers
// before the wildcard fallback (if any). A nil result means the event
// loop should fall back to its default handling of a plain rune
// (self-insert into whichever edit buffer is active).
func (t *Table) Lookup(event *tcell.EventKey) []Action {
	var wildcard []Action
	for _, key := range t.order {
		b := t.byKey[key]
		if b.Matcher.Wildcard {
			wildcard = b.Actions
			continue
		}
		if b.Matcher.Matches(event) {
			return b.Actions
		}
	}
	return wildcard
}

// DefaultTable returns the built-in key bindings. Key names follow
// standard terminal conventions: printable runes self-insert into the
// query, Enter accepts, Esc/Ctrl-C abort, arrows and Ctrl-P/Ctrl-N move
// the cursor, Tab/Shift-Tab toggle the current row and move, and the
// readline-style Ctrl- chords drive line editing.
func DefaultTable() *Table {
	t := NewTable()

	t.Bind(EventMatcher{Key: tcell.KeyEnter}, NamedActions["accept"])
	t.Bind(EventMatcher{Key: tcell.KeyEsc}, NamedActions["abort"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlC}, NamedActions["abort"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlG}, NamedActions["abort"])

	t.Bind(EventMatcher{Key: tcell.KeyUp}, NamedActions["up"])
	t.Bind(EventMatcher{Key: tcell.KeyDown}, NamedActions["down"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlP}, NamedActions["up"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlN}, NamedActions["down"])
	t.Bind(EventMatcher{Key: tcell.KeyPgUp}, NamedActions["page-up"])
	t.Bind(EventMatcher{Key: tcell.KeyPgDn}, NamedActions["page-down"])

	t.Bind(EventMatcher{Key: tcell.KeyTab}, NamedActions["toggle-down"])
	t.Bind(EventMatcher{Key: tcell.KeyBacktab}, NamedActions["toggle-up"])

	t.Bind(EventMatcher{Key: tcell.KeyCtrlA}, NamedActions["beginning-of-line"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlE}, NamedActions["end-of-line"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlF}, NamedActions["forward-char"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlB}, NamedActions["backward-char"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlU}, NamedActions["unix-line-discard"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlK}, NamedActions["kill-line"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlW}, NamedActions["backward-kill-word"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlY}, NamedActions["yank"])
	t.Bind(EventMatcher{Key: tcell.KeyCtrlD}, NamedActions["delete-charEOF"])
	t.Bind(EventMatcher{Key: tcell.KeyDelete}, NamedActions["delete-char"])
	t.Bind(EventMatcher{Key: tcell.KeyBackspace}, NamedActions["backward-delete-char"])
	t.Bind(EventMatcher{Key: tcell.KeyBackspace2}, NamedActions["backward-delete-char"])

	t.Bind(EventMatcher{Key: tcell.KeyCtrlSpace}, NamedActions["toggle"])

	return t
}
