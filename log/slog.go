package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger adapts a 'slog.Logger' so it can be used wherever a 'Logger' is expected.
//
// NOTE: The message is formatted before being handed to slog, so handlers see a single pre-rendered message.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps the given slog logger, using 'slog.Default()' when it's nil.
func NewSlogLogger(logger *slog.Logger) SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return SlogLogger{logger: logger}
}

// Log implements the 'Logger' interface.
func (s SlogLogger) Log(level Level, format string, args ...any) {
	lvl := level.slogLevel()

	if !s.logger.Enabled(context.Background(), lvl) {
		return
	}

	s.logger.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}
