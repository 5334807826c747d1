// Package telemetry reports palette usage events. Reporting is best-effort:
// failures are logged and never surfaced to the caller.
package telemetry

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reporter receives action events from UI surfaces.
type Reporter interface {
	// ReportActionEvent records that an action was confirmed on the given
	// surface, e.g. ("command palette", "editor: backspace").
	ReportActionEvent(surface, name string)
}

// Nop is a Reporter that discards everything.
type Nop struct{}

// ReportActionEvent discards the event.
func (Nop) ReportActionEvent(surface, name string) {}

// Log is a Reporter that writes structured events through a zap logger.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a log-backed reporter. A nil logger uses zap.NewNop.
func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

// ReportActionEvent writes the event with a fresh correlation id.
func (l *Log) ReportActionEvent(surface, name string) {
	l.logger.Info("action event",
		zap.String("event_id", uuid.NewString()),
		zap.String("surface", surface),
		zap.String("action", name),
	)
}
