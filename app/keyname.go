package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// keyEventName renders a key event the way --bind/--expect key tokens
// name it ("enter", "ctrl-j", "a"), so --expect can match against the same
// vocabulary the binding parser accepts.
func keyEventName(event *tcell.EventKey) string {
	if name, ok := namedEventKeys[event.Key()]; ok {
		return name
	}
	if name, ok := ctrlEventKeys[event.Key()]; ok {
		return name
	}
	if event.Key() == tcell.KeyRune {
		return string(event.Rune())
	}
	return fmt.Sprintf("key-%d", event.Key())
}

var namedEventKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEsc:        "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "btab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
}

var ctrlEventKeys = map[tcell.Key]string{
	tcell.KeyCtrlA: "ctrl-a", tcell.KeyCtrlB: "ctrl-b", tcell.KeyCtrlC: "ctrl-c",
	tcell.KeyCtrlD: "ctrl-d", tcell.KeyCtrlE: "ctrl-e", tcell.KeyCtrlF: "ctrl-f",
	tcell.KeyCtrlG: "ctrl-g", tcell.KeyCtrlH: "ctrl-h", tcell.KeyCtrlI: "ctrl-i",
	tcell.KeyCtrlJ: "ctrl-j", tcell.KeyCtrlK: "ctrl-k", tcell.KeyCtrlL: "ctrl-l",
	tcell.KeyCtrlN: "ctrl-n", tcell.KeyCtrlO: "ctrl-o",
	tcell.KeyCtrlP: "ctrl-p", tcell.KeyCtrlQ: "ctrl-q", tcell.KeyCtrlR: "ctrl-r",
	tcell.KeyCtrlS: "ctrl-s", tcell.KeyCtrlT: "ctrl-t", tcell.KeyCtrlU: "ctrl-u",
	tcell.KeyCtrlV: "ctrl-v", tcell.KeyCtrlW: "ctrl-w", tcell.KeyCtrlX: "ctrl-x",
	tcell.KeyCtrlY: "ctrl-y", tcell.KeyCtrlZ: "ctrl-z",
}
