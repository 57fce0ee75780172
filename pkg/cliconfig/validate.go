package cliconfig

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.AdminPort < 0 || c.AdminPort > 65535 {
		return fmt.Errorf("adminPort %d is out of range (0-65535)", c.AdminPort)
	}
	if c.ReadTimeout < 0 || c.ReadTimeout > 3600 {
		return fmt.Errorf("readTimeout %d is out of range (0-3600)", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 || c.WriteTimeout > 3600 {
		return fmt.Errorf("writeTimeout %d is out of range (0-3600)", c.WriteTimeout)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("maxUploadBytes %d must not be negative", c.MaxUploadBytes)
	}
	if c.BackendURL != "" {
		u, err := url.Parse(c.BackendURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("backendUrl %q must be an absolute http(s) URL", c.BackendURL)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat)
	}
	return nil
}
