package console

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// eventBufferSize is the initial capacity reserved for one formatted event.
const eventBufferSize = 256

// Writer accumulates one formatted event and forwards it to the host console
// on Close. It implements the writer-factory contract used by instrumentation
// frameworks: the framework requests a writer for an event's severity, writes
// the formatted line, and closes it.
type Writer struct {
	level  Level
	client Client
	buf    bytes.Buffer
	closed bool
}

// MakeWriter returns a Writer bound to the given level.
func (r *Router) MakeWriter(level Level) io.WriteCloser {
	return newWriter(r, level)
}

func newWriter(client Client, level Level) *Writer {
	w := &Writer{level: level, client: client}
	w.buf.Grow(eventBufferSize)
	return w
}

// Write appends p to the event buffer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Close delivers the buffered event to the host console. The first call
// flushes; subsequent calls are no-ops. Buffered bytes must be valid UTF-8,
// as the host console channels accept text payloads.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if !utf8.Valid(w.buf.Bytes()) {
		return ErrInvalidUTF8
	}

	return w.client.Write(w.level, w.buf.Bytes())
}
