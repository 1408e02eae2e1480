package severity

import "strings"

// Level orders verbosity; a higher value lets more messages through.
type Level int32

const (
	Error Level = iota
	Warn
	Info
	Debug
)

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return "unknown"
	}
}

func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return Error, true
	case "warn":
		return Warn, true
	case "info":
		return Info, true
	case "debug":
		return Debug, true
	default:
		return Warn, false
	}
}

type Config struct {
	// Development marks a diagnostic build.
	Development bool
	LogLevel    string
	// ForceDebug is the session-scoped override; it wins over everything else.
	ForceDebug bool
}

func ResolveLevel(cfg Config) Level {
	if cfg.ForceDebug {
		return Debug
	}
	if cfg.LogLevel != "" {
		// unrecognised names come back as Warn
		lvl, _ := ParseLevel(cfg.LogLevel)
		return lvl
	}
	if cfg.Development {
		return Debug
	}
	return Warn
}
