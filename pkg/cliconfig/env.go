package cliconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvAdminPort      = "MOCKTOOL_ADMIN_PORT"
	EnvBackendURL     = "MOCKTOOL_BACKEND_URL"
	EnvAPIKey         = "MOCKTOOL_API_KEY"
	EnvLogLevel       = "MOCKTOOL_LOG_LEVEL"
	EnvLogFormat      = "MOCKTOOL_LOG_FORMAT"
	EnvMaxUploadBytes = "MOCKTOOL_MAX_UPLOAD_BYTES"
)

// LoadEnvConfig applies MOCKTOOL_* environment variables to cfg.
// A malformed numeric variable is reported and leaves cfg unchanged for
// that key.
func LoadEnvConfig(cfg *Config) error {
	env := &Config{
		BackendURL: os.Getenv(EnvBackendURL),
		APIKey:     os.Getenv(EnvAPIKey),
		LogLevel:   os.Getenv(EnvLogLevel),
		LogFormat:  os.Getenv(EnvLogFormat),
	}

	var firstErr error
	if v := os.Getenv(EnvAdminPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			firstErr = fmt.Errorf("invalid %s %q: %w", EnvAdminPort, v, err)
		} else {
			env.AdminPort = port
		}
	}
	if v := os.Getenv(EnvMaxUploadBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("invalid %s %q: %w", EnvMaxUploadBytes, v, err)
			}
		} else {
			env.MaxUploadBytes = n
		}
	}

	MergeConfig(cfg, env, SourceEnv)
	return firstErr
}
