// Package input implements the action/binding layer: named actions that
// mutate view state, a key-event matcher, and a parser for the --bind
// binding-table syntax (including the composite actions execute(...),
// if-non-matched(...), if-query-empty(...)).
package input

import (
	"github.com/colinmarc/skimmer/selectionmodel"
)

// Context is the set of operations an Action may perform. It is
// implemented by the event-loop coordinator; this package never imports
// that coordinator, so defining the seam here (rather than depending on a
// concrete coordinator type) keeps input free to be imported by it.
type Context interface {
	// Model returns the mutable cursor/selection/edit-buffer state.
	Model() *selectionmodel.Model

	// VisibleItemIndices returns the item indices of the current
	// RankedView, in display order.
	VisibleItemIndices() []int

	// CurrentItemIndex returns the item index under the cursor, or false
	// if the view is empty.
	CurrentItemIndex() (int, bool)

	// HasMatches reports whether the current RankedView is non-empty.
	HasMatches() bool

	// OnQueryEdited is called after any mutation to Model().Query; it
	// schedules a debounced Matcher restart.
	OnQueryEdited()

	// OnCmdQueryEdited is called after any mutation to Model().CmdQuery
	// in --interactive mode; it cancels and restarts the Reader.
	OnCmdQueryEdited()

	// Accept emits the current selection (or the cursor row, if the
	// selection is empty) and ends the program.
	Accept()

	// Abort ends the program without emitting a selection.
	Abort()

	// RefreshPreview forces the preview subprocess to rerun immediately.
	RefreshPreview()

	// Execute spawns cmd in the shell, handing over the terminal for its
	// duration, with {}/{N}/{N..M} placeholders expanded against the
	// current cursor row.
	Execute(cmd string)

	// AppendAndSelectQuery materializes the current query text as a
	// virtual item and selects it.
	AppendAndSelectQuery()

	// PreviousHistory and NextHistory move the history cursor and load
	// the result into Model().Query.
	PreviousHistory()
	NextHistory()
}

// Action is one named, user-bindable operation.
type Action func(ctx Context)

// EmptyAction does nothing; it is the zero value for an unresolved
// binding.
func EmptyAction(ctx Context) {}
