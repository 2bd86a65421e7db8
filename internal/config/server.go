package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Environment variables read by LoadServerConfig.
const (
	EnvAddr        = "CHESSBOARD_ADDR"
	EnvCORSOrigins = "CHESSBOARD_CORS_ORIGINS"
	EnvAutoReset   = "CHESSBOARD_AUTO_RESET"
	EnvLogLevel    = "CHESSBOARD_LOG_LEVEL"
)

// Log levels accepted for the HTTP server; they select the gin mode.
const (
	LogDebug   = "debug"
	LogRelease = "release"
	LogTest    = "test"
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr        string
	CORSOrigins []string // empty allows every origin
	AutoReset   bool
	LogLevel    string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:      ":8080",
		AutoReset: true,
		LogLevel:  LogRelease,
	}
}

// LoadServerConfig reads the server settings from the environment. Values
// in envFile are loaded first without overriding variables already set; a
// missing envFile is not an error.
func LoadServerConfig(envFile string) (*ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %v: %w", envFile, err, errors.ErrInvalidConfig)
		}
	}
	return ServerConfigFromEnv(os.LookupEnv)
}

// ServerConfigFromEnv builds a ServerConfig from a variable lookup function.
func ServerConfigFromEnv(lookup func(string) (string, bool)) (*ServerConfig, error) {
	cfg := NewServerConfig()

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvCORSOrigins); ok && v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}
	if v, ok := lookup(EnvAutoReset); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %w", EnvAutoReset, v, errors.ErrInvalidConfig)
		}
		cfg.AutoReset = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	switch s.LogLevel {
	case LogDebug, LogRelease, LogTest:
	default:
		return fmt.Errorf("log level %q: %w", s.LogLevel, errors.ErrInvalidConfig)
	}
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (s *ServerConfig) AllowAllOrigins() bool {
	return len(s.CORSOrigins) == 0
}
