// Package config loads algokit configuration from defaults, a YAML file and
// ALGOKIT_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	App       AppConfig       `koanf:"app"`
	HTTP      HTTPConfig      `koanf:"http"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Tracing   TracingConfig   `koanf:"tracing"`
	Cache     CacheConfig     `koanf:"cache"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Solver    SolverConfig    `koanf:"solver"`
}

// AppConfig holds process identity.
type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // development, staging, production
}

// HTTPConfig configures the JSON API server.
type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

// Address returns the listen address.
func (h HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", h.Port)
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	Namespace string `koanf:"namespace"`
}

// TracingConfig configures the OTLP exporter.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
	Insecure    bool    `koanf:"insecure"`
}

// CacheConfig selects and sizes the result cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Driver     string        `koanf:"driver"` // redis, memory
	Host       string        `koanf:"host"`
	Port       int           `koanf:"port"`
	Password   string        `koanf:"password"`
	DB         int           `koanf:"db"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
	MaxEntries int           `koanf:"max_entries"` // memory only
}

// Address returns host:port of the cache server.
func (c CacheConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig bounds requests per client on the HTTP API.
type RateLimitConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Requests  int           `koanf:"requests"`
	Window    time.Duration `koanf:"window"`
	Backend   string        `koanf:"backend"` // memory, redis
	RedisAddr string        `koanf:"redis_addr"`
}

// SolverConfig limits the work a single request may ask for.
type SolverConfig struct {
	Timeout      time.Duration `koanf:"timeout"`
	MaxVertices  int           `koanf:"max_vertices"`
	MaxEdges     int           `koanf:"max_edges"`
	BatchWorkers int           `koanf:"batch_workers"`
	MaxBatchSize int           `koanf:"max_batch_size"`
}

// Validate checks ranges and enumerations, normalising empty log settings.
func (c *Config) Validate() error {
	var errs []string

	if c.App.Name == "" {
		errs = append(errs, "app.name is required")
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Sprintf("http.port must be between 1 and 65535, got %d", c.HTTP.Port))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if c.Log.Format != "" && !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errs = append(errs, "tracing.endpoint is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
			errs = append(errs, fmt.Sprintf("tracing.sample_rate must be between 0 and 1, got %f", c.Tracing.SampleRate))
		}
	}

	if c.Cache.Enabled {
		validDrivers := map[string]bool{"memory": true, "redis": true}
		if !validDrivers[c.Cache.Driver] {
			errs = append(errs, fmt.Sprintf("cache.driver must be one of: memory, redis, got %s", c.Cache.Driver))
		}
		if c.Cache.DefaultTTL <= 0 {
			errs = append(errs, "cache.default_ttl must be positive")
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests <= 0 {
			errs = append(errs, "rate_limit.requests must be positive")
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, "rate_limit.window must be positive")
		}
	}

	if c.Solver.MaxVertices <= 0 {
		errs = append(errs, "solver.max_vertices must be positive")
	}
	if c.Solver.MaxEdges < 0 {
		errs = append(errs, "solver.max_edges must be non-negative")
	}
	if c.Solver.BatchWorkers <= 0 {
		errs = append(errs, "solver.batch_workers must be positive")
	}
	if c.Solver.Timeout <= 0 {
		errs = append(errs, "solver.timeout must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// IsDevelopment reports whether the environment is development.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "dev"
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production" || c.App.Environment == "prod"
}
