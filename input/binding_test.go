package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBindReplacesEarlierBindingForSameKey(t *testing.T) {
	tbl := NewTable()
	var calls []string
	tbl.Bind(EventMatcher{Key: tcell.KeyEnter}, func(ctx Context) { calls = append(calls, "first") })
	tbl.Bind(EventMatcher{Key: tcell.KeyEnter}, func(ctx Context) { calls = append(calls, "second") })

	if len(tbl.order) != 1 {
		t.Fatalf("expected exactly one order entry, got %d", len(tbl.order))
	}

	ev := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	actions := tbl.Lookup(ev)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	fc := newFakeContext(false, nil)
	actions[0](fc)
	if len(calls) != 1 || calls[0] != "second" {
		t.Fatalf("expected replacement binding to fire, got %v", calls)
	}
}

func TestLookupPrefersSpecificOverWildcard(t *testing.T) {
	tbl := NewTable()
	tbl.Bind(EventMatcher{Wildcard: true}, NamedActions["abort"])
	tbl.Bind(EventMatcher{Key: tcell.KeyEnter}, NamedActions["accept"])

	ev := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	actions := tbl.Lookup(ev)
	fc := newFakeContext(false, nil)
	for _, a := range actions {
		a(fc)
	}
	if !fc.accepted || fc.aborted {
		t.Fatalf("expected the specific enter binding to win over the wildcard")
	}
}

func TestLookupReturnsNilWhenNoBindingMatches(t *testing.T) {
	tbl := NewTable()
	tbl.Bind(EventMatcher{Key: tcell.KeyEnter}, NamedActions["accept"])
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	if actions := tbl.Lookup(ev); actions != nil {
		t.Fatalf("expected nil for an unbound rune, got %v", actions)
	}
}

func TestDefaultTableBindsEnterAndEsc(t *testing.T) {
	tbl := DefaultTable()
	fc := newFakeContext(false, nil)

	for _, a := range tbl.Lookup(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		a(fc)
	}
	if !fc.accepted {
		t.Fatalf("expected Enter to accept by default")
	}

	fc2 := newFakeContext(false, nil)
	for _, a := range tbl.Lookup(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)) {
		a(fc2)
	}
	if !fc2.aborted {
		t.Fatalf("expected Esc to abort by default")
	}
}

func TestDefaultTableTabTogglesAndMoves(t *testing.T) {
	tbl := DefaultTable()
	fc := newFakeContext(true, []int{10, 11, 12})

	for _, a := range tbl.Lookup(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)) {
		a(fc)
	}
	if !fc.model.Selected.Contains(10) {
		t.Fatalf("expected row 10 to be selected after tab")
	}
	if fc.model.Cursor != 1 {
		t.Fatalf("expected cursor to advance to 1, got %d", fc.model.Cursor)
	}
}
