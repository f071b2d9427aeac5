package console

import (
	"testing"

	sdk "github.com/tarmac-project/sdk"
	"github.com/tarmac-project/sdk/hostmock"
)

func BenchmarkRouter(b *testing.B) {
	const namespace = "benchmark"

	line := []byte(`{"level":"info","msg":"benchmark event"}`)

	mock, _ := hostmock.New(hostmock.Config{
		ExpectedNamespace:  namespace,
		ExpectedCapability: capabilityName,
		ExpectedFunction:   "info",
	})

	builder := New(Config{SDKConfig: sdk.RuntimeConfig{Namespace: namespace}, HostCall: mock.HostCall})
	router, err := builder.Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	b.Run("Write", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			if err := router.Write(LevelInfo, line); err != nil {
				b.Fatalf("Write failed: %v", err)
			}
		}
	})

	b.Run("MakeWriter", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			w := router.MakeWriter(LevelInfo)
			if _, err := w.Write(line); err != nil {
				b.Fatalf("Write failed: %v", err)
			}
			if err := w.Close(); err != nil {
				b.Fatalf("Close failed: %v", err)
			}
		}
	})
}

func BenchmarkRouterRemapped(b *testing.B) {
	const namespace = "benchmark"

	line := []byte(`{"level":"trace","msg":"benchmark event"}`)

	mock, _ := hostmock.New(hostmock.Config{
		ExpectedNamespace:  namespace,
		ExpectedCapability: capabilityName,
		ExpectedFunction:   "debug",
	})

	router, err := New(Config{SDKConfig: sdk.RuntimeConfig{Namespace: namespace}, HostCall: mock.HostCall}).
		MapLevelTo(LevelTrace, LevelDebug).
		Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	b.ResetTimer()
	for range b.N {
		if err := router.Write(LevelTrace, line); err != nil {
			b.Fatalf("Write failed: %v", err)
		}
	}
}
