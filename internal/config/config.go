// Package config loads mazegen settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Width            int    // Initial maze width
	Height           int    // Initial maze height
	Seed             int64  // Seed for a reproducible series of mazes; 0 means fresh entropy
	LogVerbosity     int    // logr verbosity threshold
	LogFile          string // Log destination; empty means stderr
	Color            bool   // Colored menu output
	LocaleDir        string // gotext catalog directory; empty disables lookups
	Language         string // gotext language
	TelemetryEnabled bool   // Export traces over OTLP HTTP
	ServiceName      string // Telemetry service name
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads a .env file if one is present and builds the Config from the
// process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the Config using lookup to read variables.
func FromLookup(lookup LookupFunc) (Config, error) {
	e := env{lookup: lookup}

	cfg := Config{
		Width:            e.getInt("MAZE_WIDTH", 15),
		Height:           e.getInt("MAZE_HEIGHT", 9),
		Seed:             e.getInt64("MAZE_SEED", 0),
		LogVerbosity:     e.getInt("MAZE_LOG_VERBOSITY", 0),
		LogFile:          e.getString("MAZE_LOG_FILE", ""),
		Color:            e.getBool("MAZE_COLOR", true),
		LocaleDir:        e.getString("MAZE_LOCALE_DIR", ""),
		Language:         e.getString("MAZE_LANGUAGE", "en_US"),
		TelemetryEnabled: e.getBool("MAZE_TELEMETRY", false),
		ServiceName:      e.getString("MAZE_SERVICE_NAME", "mazegen"),
	}
	if e.err != nil {
		return Config{}, e.err
	}
	return cfg, nil
}

// env reads typed values and keeps the first parse error.
type env struct {
	lookup LookupFunc
	err    error
}

// getString retrieves the value of an environment variable or returns a default value if not set.
func (e *env) getString(key, defaultValue string) string {
	if value, exists := e.lookup(key); exists {
		return value
	}
	return defaultValue
}

func (e *env) getInt(key string, defaultValue int) int {
	return int(e.parse(key, int64(defaultValue), func(s string) (int64, error) {
		v, err := strconv.Atoi(s)
		return int64(v), err
	}))
}

func (e *env) getInt64(key string, defaultValue int64) int64 {
	return e.parse(key, defaultValue, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func (e *env) getBool(key string, defaultValue bool) bool {
	value, exists := e.lookup(key)
	if !exists || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		e.fail(fmt.Errorf("environment variable %s must be a boolean: %w", key, err))
		return defaultValue
	}
	return b
}

func (e *env) parse(key string, defaultValue int64, conv func(string) (int64, error)) int64 {
	value, exists := e.lookup(key)
	if !exists || value == "" {
		return defaultValue
	}
	v, err := conv(value)
	if err != nil {
		e.fail(fmt.Errorf("environment variable %s must be an integer: %w", key, err))
		return defaultValue
	}
	return v
}

func (e *env) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
