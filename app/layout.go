package app

import (
	"strings"

	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/display"
)

// buildLayoutOptions translates the resolved CLI flags into the static
// frame layout DrawFrame needs every tick. Preview docking is filled in
// separately by New, since it depends on whether --preview is even set.
func buildLayoutOptions(opts *config.Options) display.Options {
	o := display.Options{
		Reverse:     opts.Reverse,
		TabStop:     uint64(opts.TabStop),
		NoHscroll:   opts.NoHscroll,
		Interactive: opts.Interactive,
		Prompt:      opts.Prompt,
		CmdPrompt:   opts.CmdPrompt,
	}
	if opts.Header != "" {
		o.HeaderLines = strings.Split(opts.Header, "\n")
	}
	return o
}
