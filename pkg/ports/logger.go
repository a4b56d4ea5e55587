// Package ports defines the interfaces the conversion pipeline depends on.
package ports

// LogLevel orders log messages by severity. LevelQuiet is above every
// other level and silences the logger.
type LogLevel int

const (
	LevelDebug LogLevel = iota // per-stage detail (shapes, paths, frame sizes)
	LevelInfo                  // orchestrator progress
	LevelWarn                  // best-effort steps that failed, e.g. debug output
	LevelError                 // the conversion failed
	LevelQuiet
)

// String returns the flag spelling of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel maps a --log-level value to a LogLevel. Unknown values
// fall back to LevelInfo; the CLI validates the flag before calling this.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger is the logging port shared by the stages and adapters.
//
// msg is a lexicon key: the console adapter translates it with go-l10n
// before applying args, so callers pass an untranslated format string.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes every message with
	// [component]. Stages and adapters log through one of these.
	WithComponent(component string) Logger
}
