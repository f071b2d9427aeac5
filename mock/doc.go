/*
Package mock provides a test double for the console capability client.

MockClient implements console.Client entirely in memory: writes are recorded
with their severity, channel, and a copy of the payload, and failures can be
injected per severity. Use it to test code that embeds the console router
without standing up a host runtime.

	m := mock.New(mock.Config{
	  Errors: map[console.Level]error{
	    console.LevelError: errors.New("sink unavailable"),
	  },
	})

	// Inject into the component under test, then assert on m.Calls.

For wire-level assertions against the waPC host-call boundary itself, use the
hostmock module instead.
*/
package mock
