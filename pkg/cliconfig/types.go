// Package cliconfig provides configuration types and loading for the mocktool CLI.
package cliconfig

// Config represents the complete configuration for the mocktool CLI.
// Values can come from multiple sources with the following precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables
//  3. Local config file (.mocktoolrc.yaml in the current directory, or --config)
//  4. Global config file ($XDG_CONFIG_HOME/mocktool/config.yaml)
//  5. Default values (lowest priority)
type Config struct {
	// Admin API settings
	AdminPort      int   `yaml:"adminPort" json:"adminPort"`
	ReadTimeout    int   `yaml:"readTimeout" json:"readTimeout"`
	WriteTimeout   int   `yaml:"writeTimeout" json:"writeTimeout"`
	MaxUploadBytes int64 `yaml:"maxUploadBytes" json:"maxUploadBytes"`

	// Backend that stores mock APIs
	BackendURL string `yaml:"backendUrl" json:"backendUrl"`
	APIKey     string `yaml:"apiKey,omitempty" json:"-"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from, keyed by YAML name.
	Sources map[string]string `yaml:"-" json:"sources,omitempty"`
}

// Config sources, lowest precedence first.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)
