// Package logging configures the structured loggers used across mocktool.
//
// It is a thin layer over log/slog. Commands build one logger from the
// resolved CLI configuration and hand it to each component:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.LogLevel),
//	    Format: logging.ParseFormat(cfg.LogFormat),
//	})
//	api := admin.NewAPI(cfg, admin.WithLogger(logging.Component(logger, "admin")))
//
// Components that are not given a logger fall back to Nop.
package logging
