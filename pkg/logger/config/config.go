package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Log levels, same numbering as zapcore.Level.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

type Configuration struct {
	Level      int    `validate:"min=-1,max=4"`
	TimeFormat string `validate:"required"`
}

func (c Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid logger configuration: %w", err)
	}

	// a layout without any reference time component formats every timestamp identically
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400+3661, 0).UTC().Format(c.TimeFormat) {
		return fmt.Errorf("invalid logger configuration: LOG_TIME_FORMAT %q is not a time layout", c.TimeFormat)
	}
	return nil
}
