package config

import (
	"time"

	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the config package.
// The root *Config is an injector argument; this set extracts the
// sub-configurations other packages depend on.
var ProviderSet = wire.NewSet(
	ProvideServerConfig,
	ProvideLoggerConfig,
	ProvideObservesConfig,
	ProvideLocation,
)

// ProvideServerConfig provides the HTTP listener configuration.
func ProvideServerConfig(cfg *Config) *Server {
	if cfg == nil {
		return nil
	}
	return cfg.Server
}

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.LoggerConfig()
}

// ProvideObservesConfig provides the error reporting configuration.
func ProvideObservesConfig(cfg *Config) *Observes {
	if cfg == nil {
		return nil
	}
	return cfg.Observes
}

// ProvideLocation provides the timezone used for "today".
func ProvideLocation(cfg *Config) (*time.Location, error) {
	if cfg == nil {
		return time.Local, nil
	}
	return cfg.Location()
}
