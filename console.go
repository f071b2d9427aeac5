package console

import (
	"errors"
	"fmt"
	"io"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	sdk "github.com/tarmac-project/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "console"

const hostStatusOK = int32(200)

// HostCall defines the waPC host function signature used by console writes.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client defines the console capability interface.
type Client interface {
	// Write delivers one formatted line to the host channel for the level.
	Write(level Level, p []byte) error

	// MakeWriter returns a writer bound to the given level. Bytes written to
	// it are buffered and delivered as a single line on Close.
	MakeWriter(level Level) io.WriteCloser
}

// Config controls how a Router instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for console writes.
	HostCall HostCall
}

// Builder accumulates level overrides before the Router is constructed.
// Builders are not safe for concurrent use; the Router produced by Build is.
type Builder struct {
	cfg    Config
	levels [levelCount]Level
	err    error
}

// Router delivers formatted log lines to the host console, substituting the
// output channel for each severity according to its frozen remapping table.
type Router struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
	levels   [levelCount]Level
}

// Ensure Router satisfies the Client interface at compile time.
var _ Client = (*Router)(nil)

// New returns a Builder with the identity mapping and the given configuration.
func New(cfg Config) *Builder {
	b := &Builder{cfg: cfg}
	for _, l := range Levels() {
		b.levels[l] = l
	}
	return b
}

// Default returns a Builder with the identity mapping and default configuration.
func Default() *Builder {
	return New(Config{})
}

// MapLevelTo overrides the console channel used for events at the given
// level. Repeated overrides for the same level replace each other; the last
// call wins. An argument outside the defined severities is recorded and
// reported by Build.
func (b *Builder) MapLevelTo(from, to Level) *Builder {
	if !from.valid() || !to.valid() {
		if b.err == nil {
			b.err = fmt.Errorf("%w: map %d to %d", ErrInvalidLevel, from, to)
		}
		return b
	}

	b.levels[from] = to
	return b
}

// Build freezes the remapping table and returns the Router. It fails if any
// recorded override named a severity outside the defined enumeration.
func (b *Builder) Build() (*Router, error) {
	if b.err != nil {
		return nil, b.err
	}

	runtime := b.cfg.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = sdk.DefaultNamespace
	}

	hostCall := b.cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Router{
		runtime:  runtime,
		hostCall: hostCall,
		levels:   b.levels,
	}, nil
}

// Write delivers p to exactly one host console channel, selected by applying
// the remapping table to level. The payload is passed through byte-for-byte.
// A host call failure is returned to the caller as-is; there are no retries.
func (r *Router) Write(level Level, p []byte) error {
	if !level.valid() {
		return ErrInvalidLevel
	}

	resp, err := r.hostCall(r.runtime.Namespace, capabilityName, r.levels[level].Channel(), p)
	if err != nil {
		return err
	}

	// Hosts commonly acknowledge console writes with an empty payload.
	if len(resp) == 0 {
		return nil
	}

	var status sdkproto.Status
	if unmarshalErr := status.UnmarshalVT(resp); unmarshalErr != nil {
		return errors.Join(sdk.ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
	}

	return validateStatus(&status)
}

// validateStatus maps a host acknowledgement to an error, if it reports one.
func validateStatus(status *sdkproto.Status) error {
	code := status.GetCode()
	if code == hostStatusOK {
		return nil
	}

	detail := fmt.Sprintf("host status %d", code)
	if msg := status.GetStatus(); msg != "" {
		detail = fmt.Sprintf("%s: %s", detail, msg)
	}
	return errors.Join(sdk.ErrHostError, errors.New(detail))
}
