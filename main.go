package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/colinmarc/skimmer/app"
	"github.com/colinmarc/skimmer/config"
	"github.com/colinmarc/skimmer/item"
	"github.com/colinmarc/skimmer/matcher"
	"github.com/colinmarc/skimmer/query"
	"github.com/colinmarc/skimmer/reader"
	"github.com/colinmarc/skimmer/scorer"
)

func main() {
	opts, err := config.Resolve(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	closeLog := setupLogging(opts.LogFile)
	defer closeLog()

	log.Printf("resolved options: %+v", opts)

	if opts.FilterSet {
		os.Exit(runFilter(opts))
	}
	os.Exit(runInteractive(opts))
}

func setupLogging(path string) func() {
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skimmer: could not open log file %q: %v\n", path, err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	return func() { f.Close() }
}

// runFilter implements -f/--filter: read stdin (or the configured producer
// command's output, when one is set) to completion, rank it
// against the filter pattern, and print every match in ranked order
// without ever touching the terminal.
func runFilter(opts *config.Options) int {
	casePolicy, err := config.CasePolicy(opts.Case)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	tiebreak, err := config.Tiebreak(opts.Tiebreak)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	nthRanges, err := config.NthRanges(opts.Nth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	withNthRanges, err := config.WithNthRanges(opts.WithNth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	store := item.NewStore()
	rdr := reader.New(store)
	readOpts := reader.Options{
		Delimiter:     opts.Delimiter,
		ReadNUL:       opts.Read0,
		ANSI:          opts.ANSI,
		NthRanges:     nthRanges,
		WithNthRanges: withNthRanges,
	}
	ctx := context.Background()

	src := io.Reader(os.Stdin)
	if opts.Cmd != "" {
		if err := rdr.RunCommand(ctx, opts.Cmd, os.Environ(), readOpts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	} else if err := rdr.ReadFrom(ctx, src, readOpts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	q := compileFilterQuery(opts.Filter, casePolicy, opts.Exact, opts.Regex)

	mtr := matcher.New(store)
	var final matcher.RankedView
	for view := range mtr.Run(ctx, q, matcher.RunOptions{
		Tiebreak: tiebreak,
		NoSort:   opts.NoSort,
		Tac:      opts.Tac,
	}) {
		final = view
		if view.Finished {
			break
		}
	}
	if final.Err != nil {
		fmt.Fprintln(os.Stderr, final.Err)
		return 2
	}

	sep := "\n"
	if opts.Print0 {
		sep = "\x00"
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, r := range final.Results {
		it, ok := store.At(r.ItemIndex)
		if !ok {
			continue
		}
		w.Write(it.Raw)
		w.WriteString(sep)
	}
	return 0
}

func compileFilterQuery(text string, casePolicy scorer.CasePolicy, exact, useRegex bool) *query.Query {
	if useRegex {
		if q, err := query.CompileRegex(text, casePolicy); err == nil {
			return q
		}
		log.Printf("filter: regex compile failed, falling back to extended: %q", text)
	}
	return query.CompileExtended(text, casePolicy, exact)
}

// runInteractive drives the full-screen session: acquire the terminal,
// run the event loop to completion, restore the terminal, then emit
// whatever was accepted.
func runInteractive(opts *config.Options) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer screen.Fini()

	a, err := app.New(screen, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	result, err := a.RunEventLoop(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return emitResult(opts, result)
}

func emitResult(opts *config.Options, result app.Result) int {
	if result.Aborted {
		return 130
	}
	if !result.Accepted {
		return 1
	}

	sep := "\n"
	if opts.Print0 {
		sep = "\x00"
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	write := func(s string) { fmt.Fprintf(w, "%s%s", s, sep) }

	if result.ExpectedKey != "" {
		write(result.ExpectedKey)
	}
	if opts.PrintQuery {
		write(result.Query)
	}
	if opts.PrintCmd {
		write(result.CmdQuery)
	}
	for _, line := range result.Lines {
		write(line)
	}
	return 0
}
