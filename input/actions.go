package input

// NamedActions maps every built-in action name to its implementation. The
// binding parser looks names up here; composite actions (execute, if-*)
// are not in this table because they carry an argument and are built
// directly by the parser instead.
var NamedActions = map[string]Action{
	"beginning-of-line":  func(ctx Context) { ctx.Model().Query.BeginningOfLine() },
	"end-of-line":        func(ctx Context) { ctx.Model().Query.EndOfLine() },
	"forward-char":       func(ctx Context) { ctx.Model().Query.ForwardChar() },
	"backward-char":      func(ctx Context) { ctx.Model().Query.BackwardChar() },
	"forward-word":       func(ctx Context) { ctx.Model().Query.ForwardWord() },
	"backward-word":      func(ctx Context) { ctx.Model().Query.BackwardWord() },
	"unix-line-discard":  func(ctx Context) { ctx.Model().Query.UnixLineDiscard(); ctx.OnQueryEdited() },
	"kill-line":          func(ctx Context) { ctx.Model().Query.KillLine(); ctx.OnQueryEdited() },
	"kill-word":          func(ctx Context) { ctx.Model().Query.KillWord(); ctx.OnQueryEdited() },
	"backward-kill-word": func(ctx Context) { ctx.Model().Query.BackwardKillWord(); ctx.OnQueryEdited() },
	"yank":               func(ctx Context) { ctx.Model().Query.Yank(); ctx.OnQueryEdited() },

	"delete-char": func(ctx Context) {
		ctx.Model().Query.DeleteChar()
		ctx.OnQueryEdited()
	},
	"delete-charEOF": func(ctx Context) {
		if ctx.Model().Query.DeleteCharEOF() {
			ctx.Abort()
			return
		}
		ctx.OnQueryEdited()
	},
	"backward-delete-char": func(ctx Context) {
		ctx.Model().Query.BackwardDeleteChar()
		ctx.OnQueryEdited()
	},

	"up":   func(ctx Context) { ctx.Model().MoveCursorUp(len(ctx.VisibleItemIndices())) },
	"down": func(ctx Context) { ctx.Model().MoveCursorDown(len(ctx.VisibleItemIndices())) },
	"page-up": func(ctx Context) {
		moveCursorBy(ctx, -pageSize)
	},
	"page-down": func(ctx Context) {
		moveCursorBy(ctx, pageSize)
	},
	"top":    func(ctx Context) { ctx.Model().Cursor = 0 },
	"bottom": func(ctx Context) { ctx.Model().Cursor = len(ctx.VisibleItemIndices()) - 1; ctx.Model().ClampCursor(len(ctx.VisibleItemIndices())) },

	"toggle": func(ctx Context) {
		if idx, ok := ctx.CurrentItemIndex(); ok {
			ctx.Model().Toggle(idx)
		}
	},
	"toggle-down": func(ctx Context) {
		if idx, ok := ctx.CurrentItemIndex(); ok {
			ctx.Model().ToggleDown(idx, len(ctx.VisibleItemIndices()))
		} else {
			ctx.Model().MoveCursorDown(len(ctx.VisibleItemIndices()))
		}
	},
	"toggle-up": func(ctx Context) {
		if idx, ok := ctx.CurrentItemIndex(); ok {
			ctx.Model().ToggleUp(idx, len(ctx.VisibleItemIndices()))
		} else {
			ctx.Model().MoveCursorUp(len(ctx.VisibleItemIndices()))
		}
	},
	"select-all":    func(ctx Context) { ctx.Model().SelectAll(ctx.VisibleItemIndices()) },
	"deselect-all":  func(ctx Context) { ctx.Model().DeselectAll() },
	"toggle-all":    func(ctx Context) { ctx.Model().ToggleAll(ctx.VisibleItemIndices()) },
	"append-and-select": func(ctx Context) { ctx.AppendAndSelectQuery() },

	"previous-history": func(ctx Context) { ctx.PreviousHistory() },
	"next-history":      func(ctx Context) { ctx.NextHistory() },

	"accept":          func(ctx Context) { ctx.Accept() },
	"abort":           func(ctx Context) { ctx.Abort() },
	"clear-query":     func(ctx Context) { ctx.Model().Query.Clear(); ctx.OnQueryEdited() },
	"refresh-preview": func(ctx Context) { ctx.RefreshPreview() },
}

// pageSize is the number of rows page-up/page-down move by. The event
// loop's renderer knows the real visible height; this package only sees
// the logical list, so it uses a fixed approximation matching a typical
// terminal's result-list height.
const pageSize = 10

func moveCursorBy(ctx Context, delta int) {
	m := ctx.Model()
	m.Cursor += delta
	m.ClampCursor(len(ctx.VisibleItemIndices()))
}
