// Package config loads service configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TASKBOARD_SERVER_PORT.
const EnvPrefix = "TASKBOARD"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Timezone string
	Server   *Server
	Logger   *Logger
	Observes *Observes
	Viper    *viper.Viper

	mu sync.RWMutex
}

// Server holds HTTP listener settings.
type Server struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig loads the configuration from the file. An empty path searches
// the usual locations and falls back to defaults when no file exists.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.taskboard")
		v.AddConfigPath("/etc/taskboard")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Timezone: v.GetString("app.timezone"),
		Server:   getServerConfig(v),
		Logger:   getLoggerConfig(v),
		Observes: getObservesConfig(v),
		Viper:    v,
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server.port %d", cfg.Server.Port)
	}
	return cfg, nil
}

// Location resolves the timezone used to decide what "today" is.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Watch watches the configuration file and reloads it when it changes.
// Only the logger section is swapped in place; listener settings need a restart.
func (c *Config) Watch(callback func(*Config)) {
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		next, err := fromViper(c.Viper)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		c.mu.Lock()
		c.Logger = next.Logger
		c.mu.Unlock()
		callback(c)
	})
	c.Viper.WatchConfig()
}

// LoggerConfig returns the current logger section.
func (c *Config) LoggerConfig() *Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logger
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "taskboard")
	v.SetDefault("run_mode", "release")
	v.SetDefault("app.timezone", "Local")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("observes.sentry.endpoint", "")
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		ReadTimeout:     getDurationOrDefault(v, "server.read_timeout", 15*time.Second),
		WriteTimeout:    getDurationOrDefault(v, "server.write_timeout", 15*time.Second),
		IdleTimeout:     getDurationOrDefault(v, "server.idle_timeout", 60*time.Second),
		ShutdownTimeout: getDurationOrDefault(v, "server.shutdown_timeout", 30*time.Second),
	}
}
