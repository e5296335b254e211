// Package config loads rangeview defaults from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. RANGEVIEW_OUTPUT_FORMAT.
const Prefix = "RANGEVIEW"

const (
	DefaultOutputFormat = "newline"
	DefaultShell        = "auto"
	DefaultLogLevel     = "warning"
)

// Config holds defaults that command line flags override. Fields carry no
// envconfig tag so only the prefixed names are read; a tagged field would fall
// back to the bare name, e.g. $SHELL.
type Config struct {
	// InputFormat splits item arguments and stdin lines.
	// Env: RANGEVIEW_INPUT_FORMAT (comma separated, default: none)
	InputFormat []string `split_words:"true"`

	// OutputFormat joins the selected items.
	// Env: RANGEVIEW_OUTPUT_FORMAT (default: newline)
	OutputFormat []string `split_words:"true" default:"newline"`

	// Shell is the dialect used by --export.
	// Env: RANGEVIEW_SHELL (default: auto)
	Shell string `default:"auto"`

	// LogLevel is one of debug, info, warning, error.
	// Env: RANGEVIEW_LOG_LEVEL (default: warning)
	LogLevel string `split_words:"true" default:"warning"`

	// LogFile sends logs to a rotated file instead of stderr.
	// Env: RANGEVIEW_LOG_FILE
	LogFile string `split_words:"true"`
}

// LoadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the optional env file and then the RANGEVIEW_ variables.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}
