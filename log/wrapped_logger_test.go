package log

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	level Level
	msg   string
}

type recordingLogger struct {
	entries []entry
}

func (r *recordingLogger) Log(level Level, format string, args ...any) {
	r.entries = append(r.entries, entry{level: level, msg: fmt.Sprintf(format, args...)})
}

func TestNewWrappedLoggerNil(t *testing.T) {
	logger := NewWrappedLogger(nil)
	require.IsType(t, nopLogger{}, logger.Logger)
	require.NotPanics(t, func() { logger.Infof("discarded %d", 1) })
}

func TestNewWrappedLoggerDoesNotNest(t *testing.T) {
	var (
		rec     = &recordingLogger{}
		wrapped = NewWrappedLogger(rec)
	)

	require.Equal(t, wrapped, NewWrappedLogger(wrapped))
}

func TestWrappedLoggerLevels(t *testing.T) {
	var (
		rec    = &recordingLogger{}
		logger = NewWrappedLogger(rec)
	)

	logger.Tracef("t%d", 0)
	logger.Debugf("d%d", 1)
	logger.Infof("i%d", 2)
	logger.Warnf("w%d", 3)
	logger.Errorf("e%d", 4)

	require.Equal(t, []entry{
		{level: LevelTrace, msg: "t0"},
		{level: LevelDebug, msg: "d1"},
		{level: LevelInfo, msg: "i2"},
		{level: LevelWarning, msg: "w3"},
		{level: LevelError, msg: "e4"},
	}, rec.entries)
}

func TestWrappedLoggerPanicf(t *testing.T) {
	var (
		rec    = &recordingLogger{}
		logger = NewWrappedLogger(rec)
	)

	require.PanicsWithValue(t, "broken invariant 42", func() { logger.Panicf("broken invariant %d", 42) })
	require.Equal(t, []entry{{level: LevelPanic, msg: "broken invariant 42"}}, rec.entries)
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{level: LevelTrace, expected: "TRAC"},
		{level: LevelDebug, expected: "DEBU"},
		{level: LevelInfo, expected: "INFO"},
		{level: LevelWarning, expected: "WARN"},
		{level: LevelError, expected: "ERRO"},
		{level: LevelPanic, expected: "PNIC"},
		{level: Level(42), expected: "UNKN"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.level.String())
		})
	}
}
