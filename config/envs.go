package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultRows     = 20
	defaultCols     = 20
	defaultLogLevel = "info"
)

var (
	ErrInvalidDimension = errors.New("maze dimension must be a positive integer")
)

// Config holds the application's configuration values.
type Config struct {
	Rows     int    // Number of maze rows
	Cols     int    // Number of maze columns
	Seed     int64  // Seed for maze carving, 0 picks one from the clock
	LogLevel string // Minimum level written by the loggers (debug, info, warn, error)
	LogFile  string // File receiving log lines, empty discards them
	DotEnv   bool   // Whether a .env file was loaded
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file first, when one exists.
func Load() (Config, error) {
	c := Config{DotEnv: godotenv.Load() == nil}

	var err error
	if c.Rows, err = getEnvAsInt("MAZE_ROWS", defaultRows); err != nil {
		return Config{}, err
	}
	if c.Cols, err = getEnvAsInt("MAZE_COLS", defaultCols); err != nil {
		return Config{}, err
	}
	if c.Seed, err = getEnvAsInt64("MAZE_SEED", 0); err != nil {
		return Config{}, err
	}
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", defaultLogLevel)
	c.LogFile = getEnvWithDefault("LOG_FILE", "")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the maze dimensions are usable.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "rows=%d", c.Rows)
	}
	if c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "cols=%d", c.Cols)
	}
	return nil
}

// getEnvAsInt retrieves the value of an environment variable as an integer, or
// returns defaultValue if it is not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, errors.Wrapf(err, "environment variable %s must be an integer", key)
	}
	return value, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "environment variable %s must be an integer", key)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
