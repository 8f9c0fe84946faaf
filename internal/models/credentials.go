package models

import (
	"fmt"
	"strings"
)

// Environment selects the remote API deployment.
type Environment string

// Supported environments
const (
	EnvironmentDemo       Environment = "demo"
	EnvironmentProduction Environment = "production"
)

var environmentURLs = map[Environment]string{
	EnvironmentDemo:       "https://devapi.currencycloud.com",
	EnvironmentProduction: "https://api.currencycloud.com",
}

// ParseEnvironment parses an environment name, case-insensitive.
func ParseEnvironment(s string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := environmentURLs[env]; !ok {
		return "", fmt.Errorf("unknown environment %q", s)
	}
	return env, nil
}

// BaseURL returns the API base URL of the environment.
func (e Environment) BaseURL() string {
	return environmentURLs[e]
}

// Credentials identifies an API user. Values are opaque and never validated locally.
type Credentials struct {
	Environment Environment // Target environment (demo or production)
	LoginID     string      // Login ID, usually an email address
	APIKey      string      // API key issued for the login ID
}
