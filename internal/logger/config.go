package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// LogLevel maps Level onto slog, defaulting to info for unknown values
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are emitted as JSON rather than logfmt text
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes returns the service identity attributes, filling blanks
// with defaults.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, orDefault(c.ServiceName, DefaultServiceName)),
		slog.String(AttrKeyVersion, orDefault(c.Version, DefaultVersion)),
		slog.String(AttrKeyEnvironment, orDefault(c.Environment, DefaultEnvironment)),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
