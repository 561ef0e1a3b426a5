// Package logging builds the zap logger shared by the service and the previews.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects level, encoding and sinks
type Config struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	// OutputPaths are zap sink URLs or file paths; empty means stderr
	OutputPaths []string `yaml:"output_paths,omitempty"`
}

// DefaultConfig logs info and above to stderr as JSON
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ParseLevel maps a level name onto zap, empty is info
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New builds a logger from cfg
func New(cfg Config) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if len(cfg.OutputPaths) > 0 {
		zc.OutputPaths = cfg.OutputPaths
		zc.ErrorOutputPaths = cfg.OutputPaths
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Verbose forces debug level
func (c Config) Verbose() Config {
	c.Level = zapcore.DebugLevel.String()
	return c
}
