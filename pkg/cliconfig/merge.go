package cliconfig

// MergeConfig merges source into target, recording sourceType for every
// field it changes. Only non-zero values from source are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.AdminPort != 0 {
		target.AdminPort = source.AdminPort
		target.Sources["adminPort"] = sourceType
	}
	if source.ReadTimeout != 0 {
		target.ReadTimeout = source.ReadTimeout
		target.Sources["readTimeout"] = sourceType
	}
	if source.WriteTimeout != 0 {
		target.WriteTimeout = source.WriteTimeout
		target.Sources["writeTimeout"] = sourceType
	}
	if source.MaxUploadBytes != 0 {
		target.MaxUploadBytes = source.MaxUploadBytes
		target.Sources["maxUploadBytes"] = sourceType
	}
	if source.BackendURL != "" {
		target.BackendURL = source.BackendURL
		target.Sources["backendUrl"] = sourceType
	}
	if source.APIKey != "" {
		target.APIKey = source.APIKey
		target.Sources["apiKey"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}
