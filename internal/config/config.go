package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	EnvUseYarn  = "BOB_USE_YARN"
	EnvLogLevel = "BOB_LOG_LEVEL"
)

// Config holds the process-wide settings read once at startup.
type Config struct {
	// UseYarn selects yarn instead of npm for package.json projects.
	UseYarn bool

	// LogLevel is the raw zap level name; empty means the default.
	LogLevel string
}

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Load(os.LookupEnv)
}

// Load builds a Config from lookup. BOB_USE_YARN counts as set when present,
// even if empty, unless it parses as a false boolean.
func Load(lookup LookupFunc) Config {
	var cfg Config
	if raw, ok := lookup(EnvUseYarn); ok {
		cfg.UseYarn = enabled(raw)
	}
	if raw, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw))
	}
	return cfg
}

func enabled(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}
