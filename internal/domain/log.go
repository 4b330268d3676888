package domain

import "time"

type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogEvent is one entry of the ui-log stream. Timestamp is assigned when
// the event is published.
type LogEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Source    string    `json:"source"`
	Message   string    `json:"message"`
}

// Icon mirrors the glyphs used by the console view.
func (e LogEvent) Icon() string {
	switch e.Level {
	case LogLevelError:
		return "✖"
	case LogLevelWarn:
		return "⚠"
	}
	return "ℹ"
}
