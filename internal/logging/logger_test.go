package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		l, err := NewLogger(LogConfig{Level: LevelDebug, Format: format})
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestFieldsAreTyped(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	l.Warn("out of domain",
		Int("index", 1),
		Float64("value", 2.5),
		Floats("x", []float64{1, 2}),
		String("mode", "(2,2)"),
		Bool("calibrated", false),
		Err(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	ctx := entry.ContextMap()
	assert.Equal(t, int64(1), ctx["index"])
	assert.Equal(t, 2.5, ctx["value"])
	assert.Equal(t, "(2,2)", ctx["mode"])
	assert.Equal(t, false, ctx["calibrated"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestWithAndNamed(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)
	child := l.Named("validate").With(String("model", "BHPTNRSur1dq1e4"))
	child.Info("ok")
	child.Debug("filtered")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "validate", entry.LoggerName)
	assert.Equal(t, "BHPTNRSur1dq1e4", entry.ContextMap()["model"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, l, l.With(String("k", "v")))
	assert.Equal(t, l, l.Named("n"))
	assert.NoError(t, l.Sync())
}

func TestDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	l, logs := observed(zapcore.InfoLevel)
	SetDefault(nil)
	assert.Equal(t, prev, Default())
	SetDefault(l)
	Default().Info("hello")
	assert.Equal(t, 1, logs.Len())
}
