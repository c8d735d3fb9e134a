package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost))
	}
	if c.Auth.MinPasswordLength < 6 {
		errs = append(errs, fmt.Errorf("auth.min_password_length must be >= 6 (got %d)", c.Auth.MinPasswordLength))
	}
	if c.Auth.TempPasswordLength < c.Auth.MinPasswordLength {
		errs = append(errs, fmt.Errorf("auth.temp_password_length must be >= min_password_length (got %d)", c.Auth.TempPasswordLength))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range (got %d)", c.Server.Port))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.Livestock.PendingPageSize <= 0 {
		errs = append(errs, fmt.Errorf("livestock.pending_page_size must be > 0 (got %d)", c.Livestock.PendingPageSize))
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path))
	}

	return errors.Join(errs...)
}
