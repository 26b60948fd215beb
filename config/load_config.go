package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"appwrite_api/types"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrMissingConfig is returned when a required configuration value is absent or empty.
var ErrMissingConfig = errors.New("missing required configuration")

var validate = validator.New()

// LoadConfig loads an optional .env file, then reads the configuration from the process environment.
// Variables already present in the environment win over the .env file.
func LoadConfig() (*types.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return ParseConfig(env.ToMap(os.Environ()))
}

// ParseConfig builds a Config from the given environment.
func ParseConfig(environ map[string]string) (*types.Config, error) {
	var cfg types.Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	// Fall back to the unprefixed names used outside of the web frontend
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = environ[types.APPWRITE_ENDPOINT_FALLBACK_ENV]
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		cfg.ProjectID = environ[types.APPWRITE_PROJECT_ID_FALLBACK_ENV]
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that the endpoint and project id are set and that the remaining values are well formed.
func ValidateConfig(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: no configuration provided", ErrMissingConfig)
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return fmt.Errorf("%w: %s is not set", ErrMissingConfig, types.APPWRITE_ENDPOINT_ENV)
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return fmt.Errorf("%w: %s is not set", ErrMissingConfig, types.APPWRITE_PROJECT_ID_ENV)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
