package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "website", cfg.DefaultSite)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "blog", cfg.WildcardPrefix)
	assert.False(t, cfg.RemoteConfigured())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_RemoteTarget(t *testing.T) {
	t.Setenv("REMOTE_TARGET_NAME", "target")
	t.Setenv("REMOTE_TARGET_BASE_PATH", "/content/target")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.RemoteConfigured())
}

func TestLoadConfig_HalfConfiguredRemoteTargetFails(t *testing.T) {
	t.Setenv("REMOTE_TARGET_NAME", "target")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REMOTE_TARGET_BASE_PATH")
}

func TestLoadConfig_ProductionRequiresLayoutService(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAYOUT_SERVICE_URL")
}

func TestResolvedAPIKey(t *testing.T) {
	cfg := &Config{APIKey: "default-key"}
	assert.Equal(t, "default-key", cfg.ResolvedAPIKey())

	cfg.APIKeyOverride = "override-key"
	assert.Equal(t, "override-key", cfg.ResolvedAPIKey())
}

func TestResolvedWildcardPrefix(t *testing.T) {
	cfg := &Config{WildcardPrefix: "blog"}
	assert.Equal(t, "blog", cfg.ResolvedWildcardPrefix())

	cfg.WildcardPrefixOverride = "stories"
	assert.Equal(t, "stories", cfg.ResolvedWildcardPrefix())
}
