package app

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"os"

	"github.com/colinmarc/skimmer/reader"
)

// startReader begins a fresh Reader generation, either against stdin (the
// common case) or against the configured producer command (--cmd, or in
// --interactive mode the current cmd-query text).
func (a *App) startReader(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	a.readerCancel = cancel
	a.readerDone = make(chan error, 1)

	opts := reader.Options{
		Delimiter:     a.opts.Delimiter,
		ReadNUL:       a.opts.Read0,
		ANSI:          a.opts.ANSI,
		NthRanges:     a.nthRanges,
		WithNthRanges: a.withNthRanges,
	}

	cmd := a.opts.Cmd
	if a.opts.Interactive {
		if text := a.model.CmdQuery.Text(); text != "" {
			cmd = text
		}
	}

	if cmd != "" {
		log.Printf("app: starting reader from command %q", cmd)
		go func() {
			a.readerDone <- a.rdr.RunCommand(runCtx, cmd, a.env, opts)
		}()
		return
	}

	log.Printf("app: starting reader from stdin")
	src := io.Reader(os.Stdin)
	if a.opts.HeaderLines > 0 {
		header, rest, err := splitHeaderLines(src, a.opts.HeaderLines)
		if err != nil {
			log.Printf("app: reading header lines failed: %v", err)
		} else {
			a.layout.HeaderLines = append(append([]string(nil), header...), a.layout.HeaderLines...)
			src = rest
		}
	}
	go func() {
		a.readerDone <- a.rdr.ReadFrom(runCtx, src, opts)
	}()
}

func (a *App) onReaderDone(err error) {
	a.readerDone = nil
	if err != nil && err != context.Canceled {
		log.Printf("app: reader run ended with error: %v", err)
	} else {
		log.Printf("app: reader run finished")
	}
}

// splitHeaderLines consumes the first n newline-terminated lines from r and
// returns them as header text, plus a reader that continues where the scan
// left off. Used for --header-lines, which removes those lines from the
// matchable stream entirely.
func splitHeaderLines(r io.Reader, n int) ([]string, io.Reader, error) {
	buffered := bufio.NewReader(r)
	var header []string
	for i := 0; i < n; i++ {
		line, err := buffered.ReadString('\n')
		if len(line) > 0 {
			header = append(header, trimNewline(line))
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return header, buffered, err
		}
	}
	return header, buffered, nil
}

func trimNewline(s string) string {
	return string(bytes.TrimRight([]byte(s), "\r\n"))
}
