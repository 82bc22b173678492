package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/phrazzld/todo-api/internal/config"
)

// loadAppConfig loads and validates the application configuration.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the effective configuration without credentials.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat,
		"cors_allowed_origins", cfg.Server.CORSAllowedOrigins)
	logger.Info("database configuration loaded",
		"driver", cfg.Database.Driver,
		"url", maskDatabaseURL(cfg.Database.URL),
		"auto_migrate", cfg.Database.AutoMigrate,
		"seed_enabled", cfg.Seed.Enabled)
}

// maskDatabaseURL hides the password of URL-style connection strings.
// Anything that does not parse as a URL with user info is returned as is.
func maskDatabaseURL(dbURL string) string {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsed.User == nil {
		return dbURL
	}
	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "redacted")
	}
	return parsed.String()
}
