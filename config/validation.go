package config

import (
	"fmt"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that everything the server cannot run without is
// present. Redis is optional; when unset the rate limiter stays off.
func ValidateConfig(cfg *Config) error {
	required := map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			return ValidationError{Field: field, Message: "is required"}
		}
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return ValidationError{Field: "SERVER_PORT", Message: "must be numeric"}
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return ValidationError{Field: "DB_PORT", Message: "must be numeric"}
	}

	return nil
}

// RedisEnabled reports whether a Redis connection is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}
