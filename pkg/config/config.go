// Package config loads the server configuration from a YAML file, applies
// defaults, and honors environment variable overrides for the settings that
// commonly differ between deployments.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
)

// Environment variable overrides, applied after the file is parsed:
//
//	ANIMALFACTD_PORT            listening port
//	ANIMALFACTD_HOST            bind address
//	ANIMALFACTD_DEFAULT_ANIMAL  kind used when no selector is supplied
//	ANIMALFACTD_<KIND>_BASE_URL per-provider upstream URL override
const envPrefix = "ANIMALFACTD"

// Load reads and parses the configuration file. An empty path yields the
// built-in defaults, so the server runs without any file at all.
func Load(path string) (backendtypes.BackendConfig, error) {
	var cfg backendtypes.BackendConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *backendtypes.BackendConfig) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = "dev"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Facts.DefaultAnimal == "" {
		cfg.Facts.DefaultAnimal = "any"
	}
	if cfg.Facts.UpstreamTimeout == 0 {
		cfg.Facts.UpstreamTimeout = 10 * time.Second
	}
	if cfg.Facts.Providers == nil {
		cfg.Facts.Providers = make(map[string]backendtypes.ProviderConfig)
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond == 0 {
			cfg.RateLimit.RequestsPerSecond = 50
		}
		if cfg.RateLimit.Burst == 0 {
			cfg.RateLimit.Burst = 100
		}
	}
	if cfg.CORS.Enabled {
		if len(cfg.CORS.AllowedMethods) == 0 {
			cfg.CORS.AllowedMethods = []string{"GET"}
		}
		if len(cfg.CORS.AllowedHeaders) == 0 {
			cfg.CORS.AllowedHeaders = []string{"Content-Type"}
		}
	}
}

func applyEnvOverrides(cfg *backendtypes.BackendConfig) error {
	if host := os.Getenv(envPrefix + "_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv(envPrefix + "_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid %s_PORT value %q: %w", envPrefix, port, err)
		}
		cfg.Server.Port = p
	}
	if animal := os.Getenv(envPrefix + "_DEFAULT_ANIMAL"); animal != "" {
		cfg.Facts.DefaultAnimal = animal
	}

	// Per-provider URL overrides. Built-in kinds are always checked so an
	// override works without a providers block in the file.
	for _, kind := range []string{"cat", "dog"} {
		if _, ok := cfg.Facts.Providers[kind]; !ok {
			cfg.Facts.Providers[kind] = backendtypes.ProviderConfig{}
		}
	}
	for name, pc := range cfg.Facts.Providers {
		envKey := fmt.Sprintf("%s_%s_BASE_URL", envPrefix, strings.ToUpper(name))
		if url := os.Getenv(envKey); url != "" {
			pc.BaseURL = url
			cfg.Facts.Providers[name] = pc
		}
	}
	return nil
}
