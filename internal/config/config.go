// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BackendConfig holds the connection settings for one Jira deployment.
type BackendConfig struct {
	URL      string
	Username string
	Password string

	// InsecureSkipVerify disables TLS certificate verification for this
	// backend. Never defaulted on; the operator must set it explicitly.
	InsecureSkipVerify bool
}

// Config holds all configuration parameters for the application.
type Config struct {
	A BackendConfig
	B BackendConfig

	// ContextUser is the acting human user attributed on every request.
	ContextUser string
}

// LoadConfig initializes and loads configuration from environment variables.
// A local .env file, when present, is loaded first.
func LoadConfig() (*Config, error) {
	// Ignore a missing .env; the environment itself may carry everything
	_ = godotenv.Load()

	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("jira.a.url", "JIRA_A_URL")
	v.BindEnv("jira.a.username", "JIRA_A_USERNAME")
	v.BindEnv("jira.a.password", "JIRA_A_PASSWORD")
	v.BindEnv("jira.a.insecure_skip_verify", "JIRA_A_INSECURE_SKIP_VERIFY")
	v.BindEnv("jira.b.url", "JIRA_B_URL")
	v.BindEnv("jira.b.username", "JIRA_B_USERNAME")
	v.BindEnv("jira.b.password", "JIRA_B_PASSWORD")
	v.BindEnv("jira.b.insecure_skip_verify", "JIRA_B_INSECURE_SKIP_VERIFY")
	v.BindEnv("jira.context_user", "JIRA_CONTEXT_USER")

	// Create config structure
	config := &Config{
		A: BackendConfig{
			URL:                v.GetString("jira.a.url"),
			Username:           v.GetString("jira.a.username"),
			Password:           v.GetString("jira.a.password"),
			InsecureSkipVerify: v.GetBool("jira.a.insecure_skip_verify"),
		},
		B: BackendConfig{
			URL:                v.GetString("jira.b.url"),
			Username:           v.GetString("jira.b.username"),
			Password:           v.GetString("jira.b.password"),
			InsecureSkipVerify: v.GetBool("jira.b.insecure_skip_verify"),
		},
		ContextUser: v.GetString("jira.context_user"),
	}

	return config, nil
}

// ValidateBackendConfig ensures one backend's connection settings are complete.
// The prefix names the backend in error messages ("JIRA_A" or "JIRA_B").
func ValidateBackendConfig(backend BackendConfig, prefix string) error {
	var missingVars []string

	if backend.URL == "" {
		missingVars = append(missingVars, prefix+"_URL")
	}
	if backend.Username == "" {
		missingVars = append(missingVars, prefix+"_USERNAME")
	}
	if backend.Password == "" {
		missingVars = append(missingVars, prefix+"_PASSWORD")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
