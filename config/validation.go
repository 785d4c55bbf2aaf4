package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks if the configuration is usable for its environment
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}

	var errs ValidationErrors
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("SERVER_PORT", cfg.ServerPort)
	require("DB_HOST", cfg.DBHost)
	require("DB_PORT", cfg.DBPort)
	require("DB_USER", cfg.DBUser)
	require("DB_NAME", cfg.DBName)
	require("JWT_SECRET", cfg.JWTSecret)

	// Locally a passwordless postgres is common; nowhere else.
	if cfg.Environment == Production || cfg.Environment == CI {
		require("DB_PASSWORD", cfg.DBPassword)
		if cfg.JWTSecret != "" && len(cfg.JWTSecret) < 32 {
			errs = append(errs, ValidationError{Field: "JWT_SECRET", Message: "must be at least 32 characters"})
		}
	}

	if cfg.TokenTTL <= 0 {
		errs = append(errs, ValidationError{Field: "TOKEN_TTL", Message: "must be positive"})
	}
	if cfg.RateLimitPerHour < 0 {
		errs = append(errs, ValidationError{Field: "RATE_LIMIT_PER_HOUR", Message: "must not be negative"})
	}
	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		errs = append(errs, ValidationError{Field: "AWS_REGION", Message: "is required when S3_BUCKET_NAME is set"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
