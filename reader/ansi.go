package reader

import (
	"strconv"
	"strings"

	"github.com/colinmarc/skimmer/item"
)

// StripANSI interprets a line's SGR (Select Graphic Rendition) escape
// sequences and returns the plain text with one StyleRun per contiguous
// span of runes sharing the same rendition. Unrecognized or non-SGR escape
// sequences are stripped without affecting style. Exported so the preview
// package can apply the same parsing to subprocess output.
func StripANSI(line string) (string, []item.StyleRun) {
	var display strings.Builder
	var runs []item.StyleRun

	cur := newPen()
	runStart := 0
	runeOffset := 0

	flush := func(end int) {
		if end <= runStart {
			return
		}
		if run, ok := cur.styleRun(runStart, end); ok {
			runs = append(runs, run)
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == 0x1b && i+1 < len(runes) && runes[i+1] == '[' {
			end, params, isSGR := scanCSI(runes, i)
			if isSGR {
				flush(runeOffset)
				cur.apply(params)
				runStart = runeOffset
			}
			i = end
			continue
		}
		display.WriteRune(r)
		runeOffset++
		i++
	}
	flush(runeOffset)

	return display.String(), runs
}

// scanCSI scans a CSI sequence (ESC '[' ... final-byte) starting at i and
// returns the index just past it, its numeric parameters (for an 'm'
// final byte, i.e. SGR), and whether it was in fact an SGR sequence.
func scanCSI(runes []rune, i int) (end int, params []int, isSGR bool) {
	j := i + 2 // skip ESC '['
	start := j
	for j < len(runes) && runes[j] != 'm' && !isFinalByte(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return len(runes), nil, false
	}
	final := runes[j]
	body := string(runes[start:j])
	end = j + 1
	if final != 'm' {
		return end, nil, false
	}
	if body == "" {
		return end, []int{0}, true
	}
	for _, f := range strings.Split(body, ";") {
		n, err := strconv.Atoi(f)
		if err != nil {
			n = 0
		}
		params = append(params, n)
	}
	return end, params, true
}

func isFinalByte(r rune) bool {
	return r >= 0x40 && r <= 0x7e
}

// pen tracks the SGR rendition state accumulated so far.
type pen struct {
	bold, underline, reverse bool
	fg, bg                   int32
}

func newPen() *pen {
	return &pen{fg: -1, bg: -1}
}

func (p *pen) apply(params []int) {
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			*p = pen{fg: -1, bg: -1}
		case code == 1:
			p.bold = true
		case code == 4:
			p.underline = true
		case code == 7:
			p.reverse = true
		case code == 22:
			p.bold = false
		case code == 24:
			p.underline = false
		case code == 27:
			p.reverse = false
		case code == 39:
			p.fg = -1
		case code == 49:
			p.bg = -1
		case code >= 30 && code <= 37:
			p.fg = int32(code - 30)
		case code >= 90 && code <= 97:
			p.fg = int32(code - 90 + 8)
		case code >= 40 && code <= 47:
			p.bg = int32(code - 40)
		case code >= 100 && code <= 107:
			p.bg = int32(code - 100 + 8)
		case code == 38 || code == 48:
			n, consumed := parseExtendedColor(params[i+1:])
			if code == 38 {
				p.fg = n
			} else {
				p.bg = n
			}
			i += consumed
		}
	}
}

// parseExtendedColor handles the "38;5;N" (256-color) and "38;2;R;G;B"
// (truecolor) forms that follow a 38 or 48 code. Truecolor is packed into
// the low 24 bits with the high bit set so callers can tell it apart from
// a palette index.
func parseExtendedColor(rest []int) (int32, int) {
	if len(rest) == 0 {
		return -1, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return int32(rest[1]), 2
		}
	case 2:
		if len(rest) >= 4 {
			packed := int32(uint32(1)<<31 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3]))
			return packed, 4
		}
	}
	return -1, 1
}

func (p *pen) styleRun(start, end int) (item.StyleRun, bool) {
	if !p.bold && !p.underline && !p.reverse && p.fg == -1 && p.bg == -1 {
		return item.StyleRun{}, false
	}
	return item.StyleRun{
		Start:     start,
		End:       end,
		Bold:      p.bold,
		Underline: p.underline,
		Reverse:   p.reverse,
		Fg:        p.fg,
		Bg:        p.bg,
	}, true
}
