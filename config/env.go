package config

import (
	"os"
)

// Environment names the runtime environment. It decides where configuration
// comes from: a local .env file in development and test, plain environment
// variables plus Docker secrets in production.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment. CI wins over the ENV
// variable so pipeline runs never pick up a developer's .env by accident.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the current environment is production
func IsProduction() bool {
	return GetEnvironment() == Production
}
