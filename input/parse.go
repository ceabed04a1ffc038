package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseBindSpecs parses a comma-separated --bind value, e.g.
// "ctrl-j:down,ctrl-k:up,enter:accept,f2:execute(less {})", applying every
// resulting binding to t. Within one KEY:ACTION group, '+' chains multiple
// actions to run in sequence.
func ParseBindSpecs(t *Table, spec string) error {
	for _, group := range splitTopLevel(spec, ',') {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		if err := parseBindGroup(t, group); err != nil {
			return err
		}
	}
	return nil
}

func parseBindGroup(t *Table, group string) error {
	i := strings.IndexByte(group, ':')
	if i < 0 {
		return fmt.Errorf("input: bind spec %q missing ':'", group)
	}
	keyName, actionSpec := group[:i], group[i+1:]

	matcher, err := parseKeyName(keyName)
	if err != nil {
		return err
	}

	var actions []Action
	for _, a := range splitTopLevel(actionSpec, '+') {
		action, err := parseActionSpec(a)
		if err != nil {
			return err
		}
		actions = append(actions, action)
	}
	t.Bind(matcher, actions...)
	return nil
}

// parseActionSpec parses one action name, optionally followed by a
// parenthesized argument for the composite actions. Parens inside the
// argument may be escaped with a backslash to nest literally.
func parseActionSpec(spec string) (Action, error) {
	spec = strings.TrimSpace(spec)
	open := strings.IndexByte(spec, '(')
	if open < 0 {
		if action, ok := NamedActions[spec]; ok {
			return action, nil
		}
		return nil, fmt.Errorf("input: unknown action %q", spec)
	}
	if !strings.HasSuffix(spec, ")") {
		return nil, fmt.Errorf("input: action %q missing closing ')'", spec)
	}
	name := spec[:open]
	arg := unescapeParens(spec[open+1 : len(spec)-1])

	switch name {
	case "execute":
		return func(ctx Context) { ctx.Execute(arg) }, nil
	case "if-non-matched":
		inner, err := parseActionSpec(arg)
		if err != nil {
			return nil, err
		}
		return func(ctx Context) {
			if !ctx.HasMatches() {
				inner(ctx)
			}
		}, nil
	case "if-query-empty":
		inner, err := parseActionSpec(arg)
		if err != nil {
			return nil, err
		}
		return func(ctx Context) {
			if ctx.Model().Query.Text() == "" {
				inner(ctx)
			}
		}, nil
	default:
		return nil, fmt.Errorf("input: unknown composite action %q", name)
	}
}

// splitTopLevel splits s on sep, except where sep appears inside a
// parenthesized argument (so execute(a,b) is not split on its internal
// comma). A backslash escapes a following paren so it doesn't affect
// nesting depth.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && (s[i+1] == '(' || s[i+1] == ')'):
			i++
		case s[i] == '(':
			depth++
		case s[i] == ')':
			if depth > 0 {
				depth--
			}
		case s[i] == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func unescapeParens(s string) string {
	s = strings.ReplaceAll(s, `\(`, "(")
	s = strings.ReplaceAll(s, `\)`, ")")
	return s
}

// parseKeyName maps a --bind key token (e.g. "ctrl-j", "alt-enter", "tab",
// "a") to an EventMatcher.
func parseKeyName(name string) (EventMatcher, error) {
	lower := strings.ToLower(name)

	var mod tcell.ModMask
	for {
		switch {
		case strings.HasPrefix(lower, "ctrl-"):
			mod |= tcell.ModCtrl
			lower = lower[len("ctrl-"):]
			continue
		case strings.HasPrefix(lower, "alt-"):
			mod |= tcell.ModAlt
			lower = lower[len("alt-"):]
			continue
		case strings.HasPrefix(lower, "shift-"):
			mod |= tcell.ModShift
			lower = lower[len("shift-"):]
			continue
		}
		break
	}

	if key, ok := namedKeys[lower]; ok {
		return EventMatcher{Key: key, Mod: mod}, nil
	}

	if mod&tcell.ModCtrl != 0 && len(lower) == 1 {
		if key, ok := ctrlLetterKeys[lower[0]]; ok {
			return EventMatcher{Key: key}, nil
		}
	}

	runes := []rune(lower)
	if len(runes) == 1 {
		return EventMatcher{Key: tcell.KeyRune, Rune: runes[0], Mod: mod}, nil
	}

	return EventMatcher{}, fmt.Errorf("input: unrecognized key name %q", name)
}

var namedKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEsc,
	"escape":    tcell.KeyEsc,
	"tab":       tcell.KeyTab,
	"btab":      tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"del":       tcell.KeyDelete,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"page-up":   tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"page-down": tcell.KeyPgDn,
}

var ctrlLetterKeys = map[byte]tcell.Key{
	'a': tcell.KeyCtrlA, 'b': tcell.KeyCtrlB, 'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD, 'e': tcell.KeyCtrlE, 'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG, 'h': tcell.KeyCtrlH, 'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ, 'k': tcell.KeyCtrlK, 'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM, 'n': tcell.KeyCtrlN, 'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP, 'q': tcell.KeyCtrlQ, 'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS, 't': tcell.KeyCtrlT, 'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV, 'w': tcell.KeyCtrlW, 'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY, 'z': tcell.KeyCtrlZ,
}
