package cliconfig

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory under the user config dir.
const GlobalConfigDir = "mocktool"

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".mocktoolrc.yaml", ".mocktoolrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// ConfigError is a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return e.Path + " (line " + strconv.Itoa(e.Line) + "): " + e.Message
	}
	return e.Path + ": " + e.Message
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// FindLocalConfig searches the current directory for a local config file.
// It returns "" when none exists.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return firstExisting(cwd, LocalConfigFileNames), nil
}

// FindGlobalConfig returns the path to the global config file, or "".
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	return firstExisting(filepath.Join(configDir, GlobalConfigDir), GlobalConfigFileNames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a Config from a YAML file. Unknown keys are rejected.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		cfgErr := &ConfigError{Path: path, Message: err.Error()}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			cfgErr.Line, _ = strconv.Atoi(m[1])
		}
		return nil, cfgErr
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// LoadAll loads configuration from every source except flags and merges them.
// If explicitPath is set it replaces the local config lookup and must exist.
// Precedence: env > local (or explicit) config > global config > defaults.
func LoadAll(explicitPath string) (*Config, error) {
	cfg := NewDefault()

	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, globalCfg, SourceGlobal)
	}

	localPath := explicitPath
	if localPath == "" {
		if localPath, err = FindLocalConfig(); err != nil {
			return nil, err
		}
	}
	if localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, localCfg, SourceLocal)
	}

	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
