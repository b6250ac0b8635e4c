package config

import (
	"io"
	"time"
)

// Config defines the read-only lookups the application performs on its settings.
//
// Values are resolved once by the implementation; callers may read them at any
// time but must not expect them to change during the process lifetime.
type Config interface {
	io.Closer

	// GetString returns the value for key, or "" when unset.
	GetString(key string) string

	// GetInt returns the value for key as int, or 0 when unset or not numeric.
	GetInt(key string) int

	// GetBool returns the value for key as bool. "true", "1" and "yes"-style
	// values are accepted the way the backing store parses them.
	GetBool(key string) bool

	// GetFloat64 returns the value for key as float64.
	GetFloat64(key string) float64

	// GetSecond returns the integer value for key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetArray returns the value for key split on commas, with blank
	// elements removed and each element trimmed.
	GetArray(key string) []string
}
