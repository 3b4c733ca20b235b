package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/moasq/xcodeproj-modify/internal/pbxproj"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "XCODEPROJ_MODIFY_LOG_LEVEL"
	EnvLogFile  = "XCODEPROJ_MODIFY_LOG_FILE"
	EnvIndent   = "XCODEPROJ_MODIFY_INDENT"
	EnvNoColor  = "NO_COLOR"
)

// Config holds the CLI configuration.
type Config struct {
	// LogLevel is the minimum level of the diagnostic log.
	LogLevel slog.Level

	// LogFile receives JSON diagnostics when set.
	LogFile string

	// Color enables colored terminal output (still only on a TTY).
	Color bool

	// Output controls how project files are written.
	Output pbxproj.OutputSettings
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LogLevel: slog.LevelWarn,
		LogFile:  strings.TrimSpace(getenv(EnvLogFile)),
		Color:    getenv(EnvNoColor) == "",
		Output:   pbxproj.DefaultOutputSettings(),
	}

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, raw, err)
		}
	}

	indent, err := parseIndent(getenv(EnvIndent))
	if err != nil {
		return nil, err
	}
	cfg.Output.Indent = indent

	return cfg, nil
}

// parseIndent accepts "tab" or a space count from 0 to 8.
func parseIndent(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "tab") {
		return "\t", nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 8 {
		return "", fmt.Errorf("invalid %s %q: want \"tab\" or 0-8 spaces", EnvIndent, raw)
	}
	return strings.Repeat(" ", n), nil
}
