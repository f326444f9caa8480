package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		log, err := New(mode, "INFO")
		require.NoError(t, err, mode)
		require.NotNil(t, log.SugaredLogger)
	}
}

func TestNew_HonorsLevel(t *testing.T) {
	log, err := New("prod", "WARN")
	require.NoError(t, err)
	assert.False(t, log.SugaredLogger.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.SugaredLogger.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		ok   bool
	}{
		{"ERROR", zapcore.ErrorLevel, true},
		{"warn", zapcore.WarnLevel, true},
		{"", zapcore.InfoLevel, true},
		{"TRACE", zapcore.DebugLevel, true},
		{"chatty", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestWith_AddsFields(t *testing.T) {
	log, logs := NewObserved()

	log.With("component", "chart").Warn("render failed", "width", 0)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "render failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "chart", fields["component"])
	assert.EqualValues(t, 0, fields["width"])
}
