package cliconfig

// DefaultAdminPort is the default admin API port.
const DefaultAdminPort = 4380

// DefaultBackendURL is where the mock tool backend listens by default.
const DefaultBackendURL = "http://localhost:8080"

// DefaultReadTimeout is the default read timeout in seconds.
const DefaultReadTimeout = 30

// DefaultWriteTimeout is the default write timeout in seconds.
const DefaultWriteTimeout = 30

// DefaultMaxUploadBytes caps proto uploads to the admin API (4 MiB).
const DefaultMaxUploadBytes int64 = 4 << 20

// Default log settings.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		AdminPort:      DefaultAdminPort,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxUploadBytes: DefaultMaxUploadBytes,
		BackendURL:     DefaultBackendURL,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Sources:        make(map[string]string),
	}
	for _, key := range []string{
		"adminPort", "readTimeout", "writeTimeout", "maxUploadBytes",
		"backendUrl", "logLevel", "logFormat",
	} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
