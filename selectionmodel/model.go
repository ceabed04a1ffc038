// Package selectionmodel holds the UI-thread-only state that actions
// mutate: the result cursor, the multi-select set, scroll offset, the
// query and (in interactive mode) cmd-query edit buffers, and the query
// history cursor.
package selectionmodel

// Model is the event loop's mutable view state. It is touched only from
// the event-loop goroutine; the Matcher and Reader never read or write it.
type Model struct {
	Cursor   int
	Scroll   int
	Selected *OrderedSet
	Query    *EditBuffer
	CmdQuery *EditBuffer

	// HistoryIndex is -1 when not currently browsing history, or an index
	// into the active history ring otherwise.
	HistoryIndex int

	// Multi selects whether toggle actions have any effect (-m/--multi).
	Multi bool
}

// New constructs an empty Model.
func New(multi bool) *Model {
	return &Model{
		Selected:     NewOrderedSet(),
		Query:        NewEditBuffer(),
		CmdQuery:     NewEditBuffer(),
		HistoryIndex: -1,
		Multi:        multi,
	}
}

// ClampCursor enforces the invariant that 0 <= Cursor < max(1, viewLen),
// except that an empty view forces Cursor to 0.
func (m *Model) ClampCursor(viewLen int) {
	if viewLen <= 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	} else if m.Cursor >= viewLen {
		m.Cursor = viewLen - 1
	}
}

// MoveCursorDown advances the cursor by one row, clamped to viewLen.
func (m *Model) MoveCursorDown(viewLen int) {
	m.Cursor++
	m.ClampCursor(viewLen)
}

// MoveCursorUp retreats the cursor by one row, clamped to viewLen.
func (m *Model) MoveCursorUp(viewLen int) {
	m.Cursor--
	m.ClampCursor(viewLen)
}

// Toggle flips the selection state of itemIndex, when multi-select is on.
func (m *Model) Toggle(itemIndex int) {
	if !m.Multi {
		return
	}
	m.Selected.Toggle(itemIndex)
}

// ToggleDown toggles the current row then moves the cursor down.
func (m *Model) ToggleDown(itemIndex, viewLen int) {
	m.Toggle(itemIndex)
	m.MoveCursorDown(viewLen)
}

// ToggleUp toggles the current row then moves the cursor up.
func (m *Model) ToggleUp(itemIndex, viewLen int) {
	m.Toggle(itemIndex)
	m.MoveCursorUp(viewLen)
}

// SelectAll adds every visible item index to the selection, in the given
// order, when multi-select is on.
func (m *Model) SelectAll(visible []int) {
	if !m.Multi {
		return
	}
	for _, idx := range visible {
		m.Selected.Add(idx)
	}
}

// DeselectAll clears the selection.
func (m *Model) DeselectAll() {
	m.Selected.Clear()
}

// ToggleAll flips every visible item's selection state independently, in
// the given order, when multi-select is on.
func (m *Model) ToggleAll(visible []int) {
	if !m.Multi {
		return
	}
	for _, idx := range visible {
		m.Selected.Toggle(idx)
	}
}

// SelectedInOrder returns the selection set in insertion order.
func (m *Model) SelectedInOrder() []int {
	return m.Selected.Items()
}
