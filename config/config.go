package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Register RegisterConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type RegisterConfig struct {
	// OpeningFloat is the informational cash float the register starts
	// the day with.
	OpeningFloat decimal.Decimal
	// TaxRate is the flat presentation-time surcharge (0.20 = 20%).
	// Recorded sales always store the pre-tax subtotal.
	TaxRate decimal.Decimal
}

type SeedConfig struct {
	DemoData bool
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Register: RegisterConfig{
			OpeningFloat: getEnvDecimal("REGISTER_OPENING_FLOAT", "500.00"),
			TaxRate:      getEnvDecimal("REGISTER_TAX_RATE", "0.20"),
		},
		Seed: SeedConfig{
			DemoData: getEnvBool("SEED_DEMO_DATA", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(fallback)
}
