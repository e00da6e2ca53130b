package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/quickplate/ui-gate/config"
	apperrors "github.com/quickplate/ui-gate/internal/errors"
)

// InitLogger initializes the structured logger.
func InitLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// ValidateConfig checks the parts of the configuration that env parsing
// cannot, and returns the parsed upstream URL.
func ValidateConfig(cfg *config.AppConfig) (*url.URL, error) {
	if cfg == nil {
		return nil, apperrors.Validation("config is required")
	}

	upstream, err := url.Parse(cfg.HTTP.UpstreamURL)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "parse upstream URL %q", cfg.HTTP.UpstreamURL)
	}
	if upstream.Scheme != "http" && upstream.Scheme != "https" {
		return nil, apperrors.Validationf("upstream URL %q must use http or https scheme", cfg.HTTP.UpstreamURL)
	}
	if upstream.Host == "" {
		return nil, apperrors.Validationf("upstream URL %q must have a host", cfg.HTTP.UpstreamURL)
	}

	return upstream, nil
}
