// Package reader ingests candidate lines from stdin or a subprocess into an
// item.Store. A reader run is tied to one generation of the store: starting
// a new run (a cmd-query change in interactive mode) begins a fresh
// generation and discards whatever the previous run had appended.
package reader

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/colinmarc/skimmer/item"
)

// killGrace is how long a terminated subprocess is given to exit on its own
// before it is sent SIGKILL.
const killGrace = 100 * time.Millisecond

// Options controls how raw input bytes are split into items.
type Options struct {
	Delimiter     string // --delimiter; empty means split on runs of whitespace.
	ReadNUL       bool   // --read0: split records on NUL instead of newline.
	ANSI          bool   // --ansi: interpret and strip SGR escape sequences.
	NthRanges     []item.FieldRange
	WithNthRanges []item.FieldRange
}

// Reader streams records into a Store.
type Reader struct {
	store *item.Store
}

// New constructs a Reader that appends into store.
func New(store *item.Store) *Reader {
	return &Reader{store: store}
}

// ReadFrom starts a new generation and appends every record read from src
// until EOF or ctx is canceled. It never returns an error for a clean EOF;
// a canceled context stops the scan early and returns ctx.Err().
func (r *Reader) ReadFrom(ctx context.Context, src io.Reader, opts Options) error {
	gen := r.store.BeginGeneration()

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	if opts.ReadNUL {
		scanner.Split(splitNUL)
	} else {
		scanner.Split(bufio.ScanLines)
	}

	index := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw := append([]byte(nil), scanner.Bytes()...)
		var it item.Item
		if opts.ANSI {
			display, styles := StripANSI(string(raw))
			it = item.New(index, []byte(display), gen, opts.Delimiter, opts.NthRanges, opts.WithNthRanges)
			it.Styles = styles
		} else {
			it = item.New(index, raw, gen, opts.Delimiter, opts.NthRanges, opts.WithNthRanges)
		}
		r.store.Append(it)
		index++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reader: scan")
	}
	return nil
}

// RunCommand spawns shellCmd in the user's shell, streaming its stdout
// through ReadFrom. If ctx is canceled before the command exits, the
// subprocess is sent SIGTERM; if it has not exited within killGrace, it is
// sent SIGKILL. The command's stderr is discarded, matching the behavior of
// a backgrounded filter process the operator never watches directly.
func (r *Reader) RunCommand(ctx context.Context, shellCmd string, env []string, opts Options) error {
	prog := shellProg()
	arg := commandArgForShellProg(prog)

	cmd := exec.Command(prog, arg, shellCmd)
	cmd.Env = env
	cmd.Stderr = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "reader: StdoutPipe")
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "reader: Start")
	}

	readDone := make(chan error, 1)
	go func() {
		readDone <- r.ReadFrom(ctx, stdout, opts)
	}()

	waitDone := make(chan error, 1)
	go func() { waitDone <- cmd.Wait() }()

	for {
		select {
		case <-ctx.Done():
			terminate(cmd, waitDone)
			<-readDone
			return ctx.Err()
		case err := <-waitDone:
			<-readDone
			if err != nil {
				return errors.Wrap(err, "reader: command exited with error")
			}
			return nil
		}
	}
}

// terminate signals cmd to exit and waits on waitDone (the channel
// RunCommand's own cmd.Wait() goroutine publishes to) rather than waiting
// on the process itself, since only one goroutine may call Wait on a
// *exec.Cmd. If the process hasn't exited within killGrace, it is killed.
func terminate(cmd *exec.Cmd, waitDone <-chan error) {
	if cmd.Process == nil {
		return
	}
	signalTerminate(cmd.Process)

	timer := time.NewTimer(killGrace)
	defer timer.Stop()

	select {
	case <-waitDone:
	case <-timer.C:
		_ = cmd.Process.Kill()
	}
}

func splitNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func shellProg() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	} else if runtime.GOOS == "windows" {
		return "powershell.exe"
	}
	return "sh"
}

func commandArgForShellProg(s string) string {
	switch s {
	case "powershell.exe":
		return "-Command"
	case "cmd.exe":
		return "/c"
	default:
		return "-c"
	}
}
