// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "INR", cfg.Pricing.Currency)
	assert.Equal(t, int64(18), cfg.Pricing.TaxRatePercent)
	assert.Equal(t, int64(500), cfg.Pricing.FlatShippingFee)
	assert.Equal(t, int64(5000), cfg.Pricing.FreeShippingThreshold)
	assert.Equal(t, 7*24*time.Hour, cfg.Cart.SessionTTL)
}

func TestLoadHonorsEnvOverrides(t *testing.T) {
	t.Setenv("PRICING_TAX_RATE_PERCENT", "12")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(12), cfg.Pricing.TaxRatePercent)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.JWT.Secret = "tooshort"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing database host", func(t *testing.T) {
		cfg := base()
		cfg.Database.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("tax rate out of range", func(t *testing.T) {
		cfg := base()
		cfg.Pricing.TaxRatePercent = 120
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative shipping fee", func(t *testing.T) {
		cfg := base()
		cfg.Pricing.FlatShippingFee = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestConnectionStrings(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.GetDatabaseDSN(), "host="+cfg.Database.Host)
	assert.Contains(t, cfg.GetDatabaseDSN(), "dbname="+cfg.Database.Name)
	assert.Equal(t, cfg.Redis.Host+":"+cfg.Redis.Port, cfg.GetRedisAddr())
}
