/*
Package zapbridge connects go.uber.org/zap instrumentation to the host
console capability.

The bridge is a zapcore.Core: zap encodes each entry with the encoder you
supply, and the core forwards the encoded bytes to the console channel
matching the entry's severity (including any remapping configured on the
underlying router).

	router, err := console.Default().
	  MapLevelTo(console.LevelTrace, console.LevelDebug).
	  Build()
	if err != nil {
	  // handle configuration error
	}

	logger := zap.New(zapbridge.New(
	  router,
	  zapcore.NewJSONEncoder(zapbridge.EncoderConfig()),
	  zapcore.DebugLevel,
	))

EncoderConfig returns zap's production configuration with time encoding
disabled. Keep it that way when the host is a browser: clock access is not
guaranteed there, and timestamp decoration fails at runtime on the host side.
*/
package zapbridge
