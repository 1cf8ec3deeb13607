package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Voting.validate(); err != nil {
		return fmt.Errorf("voting: %w", err)
	}

	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if c.Redis.Enabled() && c.Redis.InviteDedupeTTL <= 0 {
		return fmt.Errorf("redis.invite_dedupe_ttl must be > 0 (got %v)", c.Redis.InviteDedupeTTL)
	}

	return nil
}

func (v *VotingConfig) validate() error {
	v.AgreeStatus = strings.TrimSpace(v.AgreeStatus)
	if v.AgreeStatus == "" {
		return fmt.Errorf("agree_status must not be empty")
	}
	if v.MaxStatusLength <= 0 {
		return fmt.Errorf("max_status_length must be > 0 (got %d)", v.MaxStatusLength)
	}
	if len(v.AgreeStatus) > v.MaxStatusLength {
		return fmt.Errorf("agree_status longer than max_status_length (%d > %d)", len(v.AgreeStatus), v.MaxStatusLength)
	}
	return nil
}
