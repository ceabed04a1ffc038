package input

import "github.com/colinmarc/skimmer/selectionmodel"

// fakeContext is a minimal Context implementation for exercising actions
// and bindings without a real event loop.
type fakeContext struct {
	model   *selectionmodel.Model
	visible []int

	hasMatches  bool
	accepted    bool
	aborted     bool
	refreshed   bool
	executedCmd string
	appended    bool
	historyPrev int
	historyNext int
	queryEdits  int
	cmdEdits    int
}

func newFakeContext(multi bool, visible []int) *fakeContext {
	return &fakeContext{
		model:      selectionmodel.New(multi),
		visible:    visible,
		hasMatches: len(visible) > 0,
	}
}

func (f *fakeContext) Model() *selectionmodel.Model { return f.model }
func (f *fakeContext) VisibleItemIndices() []int    { return f.visible }

func (f *fakeContext) CurrentItemIndex() (int, bool) {
	if f.model.Cursor < 0 || f.model.Cursor >= len(f.visible) {
		return 0, false
	}
	return f.visible[f.model.Cursor], true
}

func (f *fakeContext) HasMatches() bool       { return f.hasMatches }
func (f *fakeContext) OnQueryEdited()         { f.queryEdits++ }
func (f *fakeContext) OnCmdQueryEdited()      { f.cmdEdits++ }
func (f *fakeContext) Accept()                { f.accepted = true }
func (f *fakeContext) Abort()                 { f.aborted = true }
func (f *fakeContext) RefreshPreview()        { f.refreshed = true }
func (f *fakeContext) Execute(cmd string)     { f.executedCmd = cmd }
func (f *fakeContext) AppendAndSelectQuery()  { f.appended = true }
func (f *fakeContext) PreviousHistory()       { f.historyPrev++ }
func (f *fakeContext) NextHistory()           { f.historyNext++ }
