package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AttachesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.Info("ProjectService", "listed projects", map[string]interface{}{"count": 3})
	l.Error("Client", "request failed", map[string]interface{}{"error": errors.New("boom")})
	l.Debug("Panel", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "ProjectService", first["module"])
	assert.Equal(t, map[string]interface{}{"count": 3}, first["details"])

	second := entries[1].ContextMap()
	assert.Contains(t, second, "error_ref")
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)

	third := entries[2].ContextMap()
	assert.Equal(t, map[string]interface{}{}, third["details"])
}
