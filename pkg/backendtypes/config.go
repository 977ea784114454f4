package backendtypes

import (
	"time"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// BackendConfig defines the configuration for the fact server
type BackendConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Facts     FactsConfig     `yaml:"facts"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Version         string        `yaml:"version"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// RateLimitConfig bounds inbound request rate with a shared token bucket
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// FactsConfig configures the fact dispatch layer
type FactsConfig struct {
	// DefaultAnimal is used when a request carries no animal selector.
	// Defaults to "any".
	DefaultAnimal string `yaml:"default_animal"`

	// UpstreamTimeout bounds each provider's upstream call
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`

	// Providers holds per-kind settings, keyed by kind name
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig holds the per-provider configuration surface
type ProviderConfig struct {
	// BaseURL overrides the provider's default upstream endpoint
	BaseURL string `yaml:"base_url"`
}

// UpstreamOverrides converts the configured per-provider URLs into the map
// consumed by registry.RegisterDefaultProviders
func (c FactsConfig) UpstreamOverrides() map[types.AnimalKind]string {
	overrides := make(map[types.AnimalKind]string, len(c.Providers))
	for name, pc := range c.Providers {
		if pc.BaseURL != "" {
			overrides[types.NormalizeKind(name)] = pc.BaseURL
		}
	}
	return overrides
}
