package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfiap/go-vehicle-insurance/internal/core"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, core.DiscountModeTiered, cfg.DiscountMode)
	assert.Equal(t, 60, cfg.WorkerIntervalSec)
	assert.Equal(t, 100, cfg.RateLimitRPM)
	assert.NotEmpty(t, cfg.APIKey)
}

func TestLoadDiscountMode(t *testing.T) {
	t.Setenv("DISCOUNT_MODE", "flat")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, core.DiscountModeFlat, cfg.DiscountMode)

	t.Setenv("DISCOUNT_MODE", "percentage")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadProdRequiresAPIKey(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("API_KEY", "")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("API_KEY", "prod-key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod-key", cfg.APIKey)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
