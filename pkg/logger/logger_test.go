package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNamedUsesInjectedLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	defer Set(nil)

	Named("spawn").Info("spawned", zap.Int("count", 3))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "spawn", entries[0].LoggerName)
		assert.Equal(t, "spawned", entries[0].Message)
		assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
	}
}

func TestSetNilFallsBackToNop(t *testing.T) {
	Set(nil)
	assert.NotNil(t, L())
	assert.NotPanics(t, func() { Named("x").Debug("quiet") })
}
