// Package log provides the logging facade used by the containers in this module. Applications plug their own logger
// in by implementing 'Logger'; nothing is logged when no logger is supplied.
package log

// Logger allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// nopLogger discards everything.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
