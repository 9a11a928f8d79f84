package config

import (
	"errors"
	"fmt"
)

// log levels, same numbering as zapcore.Level
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

const (
	CONSOLE_ENCODING = "console"
	JSON_ENCODING    = "json"
)

var ErrInvalidLevel = errors.New("invalid log level")

type Configuration struct {
	Level      int
	TimeFormat string
	Encoding   string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("level %d: %w", c.Level, ErrInvalidLevel)
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	if c.Encoding != CONSOLE_ENCODING && c.Encoding != JSON_ENCODING {
		return fmt.Errorf("unknown log encoding %q", c.Encoding)
	}
	return nil
}
