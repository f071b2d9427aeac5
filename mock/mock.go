package mock

import (
	"bytes"
	"io"

	console "github.com/tarmac-project/console"
)

// MockClient implements console.Client with configurable per-level failures
// and call recording for tests. It never talks to a host.
//
// revive:disable:exported // Name mirrors package for discoverability; stutter is acceptable here.
type MockClient struct {
	// errors maps severities to injected write failures.
	errors map[console.Level]error

	// Calls records each write observed by the mock, in order.
	Calls []Call
}

// revive:enable:exported

// Call captures a single write issued through the mock.
type Call struct {
	// Level is the severity the write was issued at.
	Level console.Level
	// Channel is the console channel the level corresponds to.
	Channel string
	// Payload contains a copy of the written bytes.
	Payload []byte
}

// Config controls construction of a MockClient.
type Config struct {
	// Errors maps severities to failures the mock should return. Writes at
	// severities not present in the map succeed.
	Errors map[console.Level]error
}

// New creates a new mock console client.
func New(config Config) *MockClient {
	errs := make(map[console.Level]error, len(config.Errors))
	for level, err := range config.Errors {
		errs[level] = err
	}

	return &MockClient{
		errors: errs,
		Calls:  []Call{},
	}
}

// Write records the call and returns the injected failure for the level, if any.
func (m *MockClient) Write(level console.Level, p []byte) error {
	m.Calls = append(m.Calls, Call{
		Level:   level,
		Channel: level.Channel(),
		Payload: bytes.Clone(p),
	})

	return m.errors[level]
}

// MakeWriter returns a writer bound to the given level. Bytes written to it
// are recorded as a single call on Close.
func (m *MockClient) MakeWriter(level console.Level) io.WriteCloser {
	return &writer{level: level, client: m}
}

// Reset discards all recorded calls.
func (m *MockClient) Reset() {
	m.Calls = m.Calls[:0]
}

// CallsAt returns the recorded calls issued at the given level.
func (m *MockClient) CallsAt(level console.Level) []Call {
	var calls []Call
	for _, c := range m.Calls {
		if c.Level == level {
			calls = append(calls, c)
		}
	}
	return calls
}

// writer buffers one event and records it against the mock on Close.
type writer struct {
	level  console.Level
	client *MockClient
	buf    bytes.Buffer
	closed bool
}

func (w *writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	return w.client.Write(w.level, w.buf.Bytes())
}

// Ensure MockClient satisfies the console.Client interface at compile time.
var _ console.Client = (*MockClient)(nil)
