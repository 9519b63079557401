package config

import (
	"fmt"
	"os"
	"strconv"

	"contentedge/pkg/utils"
)

// Config holds all application configuration. It is loaded once at
// process start and read-only afterwards; components receive it by
// reference instead of reading the environment themselves.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Primary content repository (layout service)
	LayoutServiceURL string `validate:"omitempty,url"`
	DefaultSite      string `validate:"required"`
	DefaultLanguage  string `validate:"required,min=2,max=5"`

	// Remote (target) content repository. TargetName and
	// TargetBasePath are required together; when either is empty,
	// remote enrichment and sitemap synthesis are disabled.
	RemoteEndpoint string `validate:"omitempty,url"`
	TargetName     string
	TargetBasePath string
	APIKey         string
	APIKeyOverride string

	// Wildcard routing
	WildcardPrefix         string
	WildcardPrefixOverride string

	// Logging and features
	LogLevel   string
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		LayoutServiceURL: getEnv("LAYOUT_SERVICE_URL", ""),
		DefaultSite:      getEnv("DEFAULT_SITE", "website"),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "en"),

		RemoteEndpoint: getEnv("REMOTE_ENDPOINT", ""),
		TargetName:     getEnv("REMOTE_TARGET_NAME", ""),
		TargetBasePath: getEnv("REMOTE_TARGET_BASE_PATH", ""),
		APIKey:         getEnv("REMOTE_API_KEY", ""),
		APIKeyOverride: getEnv("REMOTE_API_KEY_OVERRIDE", ""),

		WildcardPrefix:         getEnv("WILDCARD_PREFIX", "blog"),
		WildcardPrefixOverride: getEnv("WILDCARD_PREFIX_OVERRIDE", ""),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}

	if c.Environment == "production" {
		if c.LayoutServiceURL == "" {
			return fmt.Errorf("LAYOUT_SERVICE_URL is required in production")
		}
	}

	// Half-configured remote targets are a deployment mistake worth
	// failing loudly on; fully absent ones just disable enrichment.
	if (c.TargetName == "") != (c.TargetBasePath == "") {
		return fmt.Errorf("REMOTE_TARGET_NAME and REMOTE_TARGET_BASE_PATH must be set together")
	}

	return nil
}

// RemoteConfigured reports whether the remote target is fully
// configured. When false, enrichment and sitemap synthesis are
// silently skipped.
func (c *Config) RemoteConfigured() bool {
	return c.TargetName != "" && c.TargetBasePath != ""
}

// ResolvedAPIKey returns the API key for remote queries, preferring
// the explicit override over the configured default.
func (c *Config) ResolvedAPIKey() string {
	if c.APIKeyOverride != "" {
		return c.APIKeyOverride
	}
	return c.APIKey
}

// ResolvedWildcardPrefix returns the wildcard path prefix, preferring
// the explicit override over the configured default.
func (c *Config) ResolvedWildcardPrefix() string {
	if c.WildcardPrefixOverride != "" {
		return c.WildcardPrefixOverride
	}
	return c.WildcardPrefix
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
