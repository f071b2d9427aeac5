package zapbridge

import (
	console "github.com/tarmac-project/console"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Core is a zapcore.Core that delivers encoded log entries to the host
// console through a console.Client. Encoding stays with the caller-supplied
// encoder; the core only selects the output channel by severity.
type Core struct {
	zapcore.LevelEnabler
	enc    zapcore.Encoder
	client console.Client
}

// New creates a Core that routes entries at or above the enabled levels
// through the given client.
func New(client console.Client, enc zapcore.Encoder, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		enc:          enc,
		client:       client,
	}
}

// EncoderConfig returns zap's production encoder configuration with time
// encoding disabled. Browser hosts do not guarantee clock access, and
// timestamp decoration triggers a host-side runtime failure there.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = zapcore.OmitKey
	return cfg
}

// With adds structured context to the core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := c.clone()
	for i := range fields {
		fields[i].AddTo(clone.enc)
	}
	return clone
}

// Check determines whether the entry should be logged through this core.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write encodes the entry and delivers it to the console channel for its level.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	defer buf.Free()

	return c.client.Write(levelOf(ent.Level), buf.Bytes())
}

// Sync is a no-op; console writes are not buffered by the core.
func (c *Core) Sync() error {
	return nil
}

func (c *Core) clone() *Core {
	return &Core{
		LevelEnabler: c.LevelEnabler,
		enc:          c.enc.Clone(),
		client:       c.client,
	}
}

// levelOf maps zap severities onto console severities. zap has no trace
// level; DPanic and above collapse to the error channel.
func levelOf(l zapcore.Level) console.Level {
	switch {
	case l <= zapcore.DebugLevel:
		return console.LevelDebug
	case l == zapcore.InfoLevel:
		return console.LevelInfo
	case l == zapcore.WarnLevel:
		return console.LevelWarn
	default:
		return console.LevelError
	}
}
