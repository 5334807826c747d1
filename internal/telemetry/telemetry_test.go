package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewLog(zap.New(core))

	r.ReportActionEvent("command palette", "editor: backspace")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "command palette", fields["surface"])
	assert.Equal(t, "editor: backspace", fields["action"])
	assert.NotEmpty(t, fields["event_id"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	r := NewLog(nil)
	assert.NotPanics(t, func() {
		r.ReportActionEvent("command palette", "workspace: save")
	})
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop{}.ReportActionEvent("command palette", "anything")
	})
}
