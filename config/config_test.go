package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "dev", cfg.Server.AppEnv)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.True(t, cfg.Register.OpeningFloat.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, cfg.Register.TaxRate.Equal(decimal.RequireFromString("0.20")))
	assert.True(t, cfg.Seed.DemoData)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("REGISTER_OPENING_FLOAT", "250.00")
	t.Setenv("REGISTER_TAX_RATE", "0.055")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg := LoadEnv()
	assert.Equal(t, "production", cfg.Server.AppEnv)
	assert.True(t, cfg.Register.OpeningFloat.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, cfg.Register.TaxRate.Equal(decimal.RequireFromString("0.055")))
	assert.False(t, cfg.Seed.DemoData)
}

func TestLoadEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("REGISTER_TAX_RATE", "twenty percent")
	t.Setenv("SEED_DEMO_DATA", "maybe")

	cfg := LoadEnv()
	assert.True(t, cfg.Register.TaxRate.Equal(decimal.RequireFromString("0.20")))
	assert.True(t, cfg.Seed.DemoData)
}
