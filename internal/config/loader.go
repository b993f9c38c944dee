package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "ALGOKIT_"
	configEnvVar = "ALGOKIT_CONFIG"
)

// Loader merges configuration sources.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
	strictFile  bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// NewLoader returns a loader searching the usual config locations.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"algokit.yaml",
			"config/algokit.yaml",
			"/etc/algokit/algokit.yaml",
		},
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithConfigPaths replaces the search paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithConfigFile loads exactly path and fails if it is missing.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		if path != "" {
			l.configPaths = []string{path}
			l.strictFile = true
		}
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load merges, lowest priority first:
//  1. defaults
//  2. YAML config file (optional unless WithConfigFile)
//  3. environment variables
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil && l.strictFile {
		return nil, err
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		// App
		"app.name":        "algokit",
		"app.version":     "0.1.0",
		"app.environment": "development",

		// HTTP
		"http.port":             8080,
		"http.read_timeout":     30 * time.Second,
		"http.write_timeout":    30 * time.Second,
		"http.shutdown_timeout": 10 * time.Second,
		"http.max_body_bytes":   8 << 20,

		// Log
		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		// Metrics
		"metrics.enabled":   true,
		"metrics.path":      "/metrics",
		"metrics.namespace": "algokit",

		// Tracing
		"tracing.enabled":      false,
		"tracing.endpoint":     "localhost:4317",
		"tracing.service_name": "algokit",
		"tracing.sample_rate":  0.1,
		"tracing.insecure":     true,

		// Cache
		"cache.enabled":     true,
		"cache.driver":      "memory",
		"cache.host":        "localhost",
		"cache.port":        6379,
		"cache.db":          0,
		"cache.default_ttl": 10 * time.Minute,
		"cache.max_entries": 10000,

		// Rate limit
		"rate_limit.enabled":  false,
		"rate_limit.requests": 100,
		"rate_limit.window":   time.Minute,
		"rate_limit.backend":  "memory",

		// Solver
		"solver.timeout":        30 * time.Second,
		"solver.max_vertices":   200000,
		"solver.max_edges":      1000000,
		"solver.batch_workers":  4,
		"solver.max_batch_size": 64,
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if !l.strictFile {
		if configPath := os.Getenv(configEnvVar); configPath != "" {
			if _, err := os.Stat(configPath); err == nil {
				return l.k.Load(file.Provider(configPath), yaml.Parser())
			}
		}
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			if err := l.k.Load(file.Provider(absPath), yaml.Parser()); err != nil {
				return fmt.Errorf("failed to parse %s: %w", absPath, err)
			}
			return nil
		}
	}

	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

// loadEnv maps ALGOKIT_SECTION_FIELD_NAME to section.field_name: the first
// underscore separates the section, the rest belong to the field.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		if mapped, ok := envSections[key]; ok {
			return mapped, value
		}
		for section := range knownSections {
			if strings.HasPrefix(key, section+"_") {
				return section + "." + strings.TrimPrefix(key, section+"_"), value
			}
		}

		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
}

// knownSections lists top-level keys; rate_limit contains an underscore
// itself and is handled by envSections.
var knownSections = map[string]bool{
	"app":     true,
	"http":    true,
	"log":     true,
	"metrics": true,
	"tracing": true,
	"cache":   true,
	"solver":  true,
}

var envSections = map[string]string{
	"rate_limit_enabled":    "rate_limit.enabled",
	"rate_limit_requests":   "rate_limit.requests",
	"rate_limit_window":     "rate_limit.window",
	"rate_limit_backend":    "rate_limit.backend",
	"rate_limit_redis_addr": "rate_limit.redis_addr",
}

// MustLoad loads configuration or panics.
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	return cfg
}

// Load loads configuration with the default search paths.
func Load() (*Config, error) {
	return NewLoader().Load()
}
