package console

import "strings"

// Level is the severity of a log event, ordered from most to least verbose.
type Level int

// Severity levels recognized by the host console capability.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// levelCount bounds the remapping table; levels index arrays of this size.
const levelCount = 5

// channelNames are the host console channel functions, one per level.
var channelNames = [levelCount]string{"trace", "debug", "info", "warn", "error"}

// levelNames are the uppercase display names used by String.
var levelNames = [levelCount]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

// Levels returns all defined levels in ascending severity order.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// String returns the uppercase name of the level, or "UNKNOWN" for values
// outside the defined range.
func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Channel returns the name of the host console channel that corresponds
// one-to-one with the level. It panics for values outside the defined range;
// callers are expected to validate first.
func (l Level) Channel() string {
	return channelNames[l]
}

// valid reports whether the level is one of the defined severity values.
func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// ParseLevel converts a level name (case-insensitive) into a Level. Both the
// display form ("WARN") and the channel form ("warn") are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return 0, ErrInvalidLevel
	}
}
