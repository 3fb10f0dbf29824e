package config

import (
	"os"
)

// Environment represents the runtime environment the client is operating in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment. CI is detected
// automatically; otherwise NUTRIPLAN_ENV decides, defaulting to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("NUTRIPLAN_ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction returns true when running against a production deployment
func IsProduction() bool {
	return GetEnvironment() == Production
}
