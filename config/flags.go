package config

import (
	"flag"
)

// stringList implements flag.Value so --bind may be given more than once
// on one command line, each occurrence appending rather than replacing.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	out := ""
	for i, s := range *l {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// newFlagSet builds a flag.FlagSet bound to a fresh Options, used both for
// parsing the real command line and for parsing SKIM_DEFAULT_OPTIONS
// (which overlays onto the default, and is itself overlaid by the real
// command line).
func newFlagSet(name string, opts *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	// Matching
	fs.BoolVar(&opts.Exact, "exact", false, "start in exact-match mode")
	fs.BoolVar(&opts.Exact, "e", false, "shorthand for --exact")
	fs.BoolVar(&opts.Regex, "regex", false, "interpret the query as a regular expression")
	fs.StringVar(&opts.Algo, "algo", "", "scoring algorithm name")
	fs.StringVar(&opts.Case, "case", "", "case sensitivity: smart, ignore, or respect")
	fs.BoolVar(&opts.Interactive, "interactive", false, "interactive mode: edit the producer command itself")
	fs.BoolVar(&opts.Interactive, "i", false, "shorthand for --interactive")
	fs.StringVar(&opts.Tiebreak, "tiebreak", "", "comma-separated tiebreak key chain")
	fs.StringVar(&opts.Nth, "nth", "", "fields to limit matching to")
	fs.StringVar(&opts.Nth, "n", "", "shorthand for --nth")
	fs.StringVar(&opts.WithNth, "with-nth", "", "fields to display")
	fs.StringVar(&opts.Delimiter, "delimiter", "", "field delimiter for --nth/--with-nth")
	fs.StringVar(&opts.Delimiter, "d", "", "shorthand for --delimiter")

	// Query
	fs.StringVar(&opts.Query, "query", "", "initial query")
	fs.StringVar(&opts.Query, "q", "", "shorthand for --query")
	fs.StringVar(&opts.CmdQuery, "cmd-query", "", "initial cmd-query (interactive mode)")
	fs.StringVar(&opts.Cmd, "cmd", "", "producer command whose output is read instead of stdin")
	fs.StringVar(&opts.Cmd, "c", "", "shorthand for --cmd")

	// Input
	fs.BoolVar(&opts.Read0, "read0", false, "read input records delimited by NUL instead of newline")
	fs.BoolVar(&opts.ANSI, "ansi", false, "interpret ANSI color codes in input")
	fs.BoolVar(&opts.Tac, "tac", false, "reverse the display order of matches")
	fs.BoolVar(&opts.NoSort, "no-sort", false, "do not sort matches by score")

	// Output
	fs.BoolVar(&opts.Print0, "print0", false, "print output records delimited by NUL instead of newline")
	fs.BoolVar(&opts.PrintQuery, "print-query", false, "print the query before the selection")
	fs.BoolVar(&opts.PrintCmd, "print-cmd", false, "print the cmd-query before the selection")
	fs.BoolVar(&opts.Select1, "select-1", false, "automatically accept if there is exactly one match")
	fs.BoolVar(&opts.Select1, "1", false, "shorthand for --select-1")
	fs.BoolVar(&opts.Exit0, "exit-0", false, "exit immediately if there are no matches")
	fs.BoolVar(&opts.Exit0, "0", false, "shorthand for --exit-0")
	fs.Func("filter", "non-interactive mode: print matches for PATTERN and exit", func(s string) error {
		opts.Filter = s
		opts.FilterSet = true
		return nil
	})
	fs.Func("f", "shorthand for --filter", func(s string) error {
		opts.Filter = s
		opts.FilterSet = true
		return nil
	})

	// UI
	fs.StringVar(&opts.Height, "height", "", "screen height, as a number of rows or a percentage")
	fs.StringVar(&opts.MinHeight, "min-height", "", "minimum screen height when --height is a percentage")
	fs.StringVar(&opts.Margin, "margin", "", "outer margin")
	fs.BoolVar(&opts.Reverse, "reverse", false, "put the query line above the result list")
	fs.BoolVar(&opts.Border, "border", false, "draw a border around the finder window")
	fs.BoolVar(&opts.InlineInfo, "inline-info", false, "display match counters on the query line instead of a separate status line")
	fs.StringVar(&opts.Header, "header", "", "header text shown above the result list")
	fs.IntVar(&opts.HeaderLines, "header-lines", 0, "number of leading input lines to treat as header text")
	fs.StringVar(&opts.Prompt, "prompt", "", "query line prompt text")
	fs.StringVar(&opts.CmdPrompt, "cmd-prompt", "", "cmd-query line prompt text")
	fs.IntVar(&opts.TabStop, "tabstop", 0, "tab character column width")
	fs.BoolVar(&opts.NoHscroll, "no-hscroll", false, "disable horizontal scrolling of long result lines")
	fs.IntVar(&opts.HscrollOff, "hscroll-off", 0, "number of columns to keep visible around the match when hscrolling")
	fs.BoolVar(&opts.NoBold, "no-bold", false, "do not use bold text")
	fs.StringVar(&opts.Color, "color", "", "color scheme name")
	fs.BoolVar(&opts.Multi, "multi", false, "enable multi-select")
	fs.BoolVar(&opts.Multi, "m", false, "shorthand for --multi")
	fs.BoolVar(&opts.NoMulti, "no-multi", false, "disable multi-select")
	fs.BoolVar(&opts.NoClearIfEmpty, "no-clear-if-empty", false, "keep the previous result list visible if the producer command yields nothing")

	// Selection
	fs.IntVar(&opts.PreSelectN, "pre-select-n", 0, "pre-select the first N items")
	fs.StringVar(&opts.PreSelectItems, "pre-select-items", "", "comma-separated items to pre-select")
	fs.StringVar(&opts.PreSelectPat, "pre-select-pat", "", "pre-select items matching this regular expression")
	fs.StringVar(&opts.PreSelectFile, "pre-select-file", "", "file of items to pre-select, one per line")

	// Bindings
	fs.Var((*stringList)(&opts.Bind), "bind", "key binding spec (may be given multiple times)")
	fs.StringVar(&opts.Expect, "expect", "", "comma-separated keys that, on accept, print the key name before the selection")

	// Preview
	fs.StringVar(&opts.Preview, "preview", "", "preview command template")
	fs.StringVar(&opts.PreviewWindow, "preview-window", "", "preview pane position and size")
	fs.StringVar(&opts.ReplToken, "I", "", "placeholder token in --preview/execute() (default {})")

	// History
	fs.StringVar(&opts.History, "history", "", "query history file path")
	fs.IntVar(&opts.HistorySize, "history-size", 0, "maximum number of query history entries")
	fs.StringVar(&opts.CmdHistory, "cmd-history", "", "cmd-query history file path")
	fs.IntVar(&opts.CmdHistorySize, "cmd-history-size", 0, "maximum number of cmd-query history entries")

	// Extras
	fs.StringVar(&opts.SkipToPattern, "skip-to-pattern", "", "regular expression marking where a match's hscroll should start")
	fs.BoolVar(&opts.Sync, "sync", false, "wait for the first full ranking before drawing the first frame")

	// Ambient
	fs.StringVar(&opts.LogFile, "log", "", "write diagnostic log lines to this file instead of discarding them")

	return fs
}
