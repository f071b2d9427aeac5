/*
Package console routes pre-formatted log output from Tarmac WebAssembly
functions to the host environment's console, with configurable severity
remapping.

Browser and JS-style hosts expose one console channel per severity class
(trace, debug, info, warn, error), and some channels carry channel-specific
behavior. The browser's trace channel, for example, captures and expands a
full call stack for every entry, which is rarely what application-level trace
events want. The Router lets an integrator redirect a severity to a quieter
channel without touching instrumentation call sites:

	router, err := console.Default().
		MapLevelTo(console.LevelTrace, console.LevelDebug).
		Build()
	if err != nil {
		// an override named an undefined level
	}

	err = router.Write(console.LevelTrace, line)

Remapping changes only the channel used for output. The event's recorded
severity, as seen by any other consumer, is untouched.

The router performs no formatting, buffering, filtering, or retries; it
forwards the supplied bytes to exactly one host channel per call. Formatting
belongs to the upstream instrumentation layer, reached through MakeWriter or
the zapbridge subpackage.

Important: upstream formatters must not decorate entries with timestamps when
the host is a browser. Clock access is not guaranteed in that context and
triggers a host-side runtime failure outside this package's control.
*/
package console
