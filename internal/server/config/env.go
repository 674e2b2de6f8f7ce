package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS        HTTP bind address (e.g., ":8080")
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     JWT HMAC secret key
//	TOKEN_TTL      token validity, minutes
//	BCRYPT_ROUNDS  bcrypt cost factor
//
// Unset or malformed values leave the current field untouched.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("BCRYPT_ROUNDS"); v != "" {
		if rounds, err := strconv.Atoi(v); err == nil && rounds > 0 {
			config.BcryptCost = rounds
		}
	}
}
