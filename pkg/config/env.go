package config

import (
	"os"
	"strings"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// GetEnv returns the value of an environment variable or a default value if not set.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvironment returns the current environment, defaulting to development.
func GetEnvironment() string {
	return strings.ToLower(GetEnv("PAINEL_SERVER_ENVIRONMENT", EnvDevelopment))
}

// IsProductionLikeEnv reports whether env is staging or production.
func IsProductionLikeEnv(env string) bool {
	env = strings.ToLower(env)
	return env == EnvStaging || env == EnvProduction
}
