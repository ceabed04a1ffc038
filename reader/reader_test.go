package reader

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colinmarc/skimmer/item"
)

func TestReadFromSplitsLines(t *testing.T) {
	store := item.NewStore()
	r := New(store)

	err := r.ReadFrom(context.Background(), strings.NewReader("one\ntwo\nthree\n"), Options{})
	require.NoError(t, err)

	require.Equal(t, 3, store.Len())
	it, _ := store.At(0)
	assert.Equal(t, "one", it.Display)
	it, _ = store.At(2)
	assert.Equal(t, "three", it.Display)
}

func TestReadFromSplitsOnNUL(t *testing.T) {
	store := item.NewStore()
	r := New(store)

	err := r.ReadFrom(context.Background(), strings.NewReader("a\x00b\x00c"), Options{ReadNUL: true})
	require.NoError(t, err)

	require.Equal(t, 3, store.Len())
	it, _ := store.At(1)
	assert.Equal(t, "b", it.Display)
}

func TestReadFromPreservesEmbeddedNewlineWithNULSplit(t *testing.T) {
	store := item.NewStore()
	r := New(store)

	err := r.ReadFrom(context.Background(), strings.NewReader("line one\nstill one\x00line two"), Options{ReadNUL: true})
	require.NoError(t, err)

	require.Equal(t, 2, store.Len())
	it, _ := store.At(0)
	assert.Equal(t, "line one\nstill one", it.Display)
}

func TestReadFromStampsGeneration(t *testing.T) {
	store := item.NewStore()
	r := New(store)

	require.NoError(t, r.ReadFrom(context.Background(), strings.NewReader("a\nb\n"), Options{}))
	gen1 := store.Generation()
	it, _ := store.At(0)
	assert.Equal(t, gen1, it.Generation)

	require.NoError(t, r.ReadFrom(context.Background(), strings.NewReader("c\n"), Options{}))
	gen2 := store.Generation()
	assert.Greater(t, gen2, gen1)
	assert.Equal(t, 1, store.Len(), "second ReadFrom should have cleared the first generation's items")
}

func TestReadFromStopsOnCancellation(t *testing.T) {
	store := item.NewStore()
	r := New(store)

	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := newPipe(ctx)

	done := make(chan error, 1)
	go func() { done <- r.ReadFrom(ctx, pr, Options{}) }()

	pw.Write([]byte("first\n"))
	time.Sleep(10 * time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStripANSIRemovesEscapesAndRecordsStyle(t *testing.T) {
	display, styles := StripANSI("\x1b[1;31mHELLO\x1b[0m world")
	assert.Equal(t, "HELLO world", display)
	require.Len(t, styles, 1)
	assert.True(t, styles[0].Bold)
	assert.Equal(t, int32(1), styles[0].Fg)
	assert.Equal(t, 0, styles[0].Start)
	assert.Equal(t, 5, styles[0].End)
}

func TestStripANSIHandles256Color(t *testing.T) {
	display, styles := StripANSI("\x1b[38;5;200mfoo\x1b[0m")
	assert.Equal(t, "foo", display)
	require.Len(t, styles, 1)
	assert.Equal(t, int32(200), styles[0].Fg)
}

func TestStripANSIPlainTextHasNoStyles(t *testing.T) {
	display, styles := StripANSI("plain text")
	assert.Equal(t, "plain text", display)
	assert.Empty(t, styles)
}

// newPipe returns an io.Reader/io.Writer pair backed by an in-memory pipe,
// used to drip-feed bytes to a Reader under test so cancellation can race
// against a still-open source. The reader half gives up and surfaces the
// context's error as soon as ctx is canceled, rather than blocking forever
// on a source that will never produce more bytes.
func newPipe(ctx context.Context) (*pipeReader, *pipeWriter) {
	ch := make(chan []byte, 16)
	return &pipeReader{ch: ch, ctx: ctx}, &pipeWriter{ch: ch}
}

type pipeReader struct {
	ctx context.Context
	ch  chan []byte
	buf []byte
}

func (p *pipeReader) Read(b []byte) (int, error) {
	for len(p.buf) == 0 {
		select {
		case chunk, ok := <-p.ch:
			if !ok {
				return 0, nil
			}
			p.buf = chunk
		case <-p.ctx.Done():
			return 0, p.ctx.Err()
		}
	}
	n := copy(b, p.buf)
	p.buf = p.buf[n:]
	return n, nil
}

type pipeWriter struct {
	ch chan []byte
}

func (p *pipeWriter) Write(b []byte) (int, error) {
	cp := append([]byte(nil), b...)
	p.ch <- cp
	return len(b), nil
}
