package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Project == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT environment variable is required")
	}

	origins, err := normalizeOrigins(cfg.AllowedOrigins)
	if err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = origins

	return &cfg, nil
}

// trims CORS_ALLOWED_ORIGINS entries; each must be "*" or a full http(s) origin
func normalizeOrigins(raw []string) ([]string, error) {
	origins := make([]string, 0, len(raw))

	for _, origin := range raw {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}

		if origin != "*" {
			hasScheme := strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://")
			if !hasScheme || strings.Contains(origin, "*") {
				return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS: invalid origin %q (use * or a full origin such as https://example.com)", origin)
			}
		}

		origins = append(origins, origin)
	}

	if len(origins) == 0 {
		return []string{"*"}, nil
	}

	return origins, nil
}

// returns a description of every environment variable the server reads
func Usage() string {
	var cfg Config

	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}

	return text
}
