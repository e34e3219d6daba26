package log

import "strings"

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Normalize lowercases the level; an empty level stays empty.
func (l Level) Normalize() Level {
	return Level(strings.ToLower(strings.TrimSpace(string(l))))
}

type Format string

func (f Format) Normalize() Format {
	return Format(strings.ToLower(strings.TrimSpace(string(f))))
}

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	Level  Level  `mapstructure:"level"`
	Format Format `mapstructure:"format"`
}

func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Format: FormatText,
	}
}
