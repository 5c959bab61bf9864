package log

import "log/slog"

// Level indicates the verbosity of a log statement.
type Level uint8

const (
	// LevelTrace is the most verbose level, used for per-block events inside containers.
	LevelTrace Level = iota

	// LevelDebug includes events which are useful when debugging the library, such as a container growing.
	LevelDebug

	// LevelInfo includes coarse-grained informational messages.
	LevelInfo

	// LevelWarning includes expected but potentially harmful events, for example an allocator refusing a request.
	LevelWarning

	// LevelError includes errors which still allow the library to continue running.
	LevelError

	// LevelPanic is used for broken invariants; logging at this level through a 'WrappedLogger' panics afterwards.
	LevelPanic
)

// String returns the four letter tag used when rendering the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return "UNKN"
}

// slogLevel maps the level onto the closest 'slog.Level'; trace and panic sit one step outside debug and error.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelTrace:
		return slog.LevelDebug - 4
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return slog.LevelError + 4
}
