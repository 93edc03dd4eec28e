package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestZapLoggerForwardsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZapLogger(New(InfoLevel, &buf)).With(zap.String("run_id", "r1"))

	logger.Debug("dropped")
	logger.Info("step completed",
		zap.Int("iteration", 3),
		zap.Float64("value", 0.25),
		zap.Bool("optimal", true),
		zap.Duration("elapsed", 1500*time.Millisecond),
	)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "step completed", e["message"])
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "r1", e["run_id"])
	assert.Equal(t, float64(3), e["iteration"])
	assert.Equal(t, 0.25, e["value"])
	assert.Equal(t, true, e["optimal"])
	assert.Contains(t, e["caller"], "logging/zapadapter_test.go")
}

func TestZapAdapterLevels(t *testing.T) {
	a := NewZapAdapter(New(WarnLevel, &bytes.Buffer{}))

	assert.False(t, a.Enabled(zap.InfoLevel))
	assert.True(t, a.Enabled(zap.WarnLevel))
	assert.True(t, a.Enabled(zap.DPanicLevel))
	assert.NoError(t, a.Sync())
}

func TestZapLoggerName(t *testing.T) {
	var buf bytes.Buffer
	NewZapLogger(New(DebugLevel, &buf)).Named("solver").Debug("status changed")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "solver", entries[0]["logger"])
	assert.Equal(t, "DEBUG", entries[0]["level"])
}
