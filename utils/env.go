package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// IsProduction reports whether the server runs with production error
// redaction (APP_ENV=production or GIN_MODE=release).
func IsProduction() bool {
	if strings.EqualFold(EnvOrDefault("APP_ENV", ""), "production") {
		return true
	}
	return EnvOrDefault("GIN_MODE", "") == "release"
}
