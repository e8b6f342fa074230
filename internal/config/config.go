package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — path to the sqlite file. The store is single-writer: the
	// connection pool is capped at one open connection (see infra.NewDatabase).
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Business
	// AllowNegativeStock keeps the historical behavior of letting a sale drive
	// stock below zero. Set to false to reject such sales instead.
	AllowNegativeStock bool   `mapstructure:"ALLOW_NEGATIVE_STOCK"`
	LowStockThreshold  int    `mapstructure:"LOW_STOCK_THRESHOLD"`
	PDFStoragePath     string `mapstructure:"PDF_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "pos.db")
	viper.SetDefault("JWT_SECRET", "cambiar-en-produccion")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ALLOW_NEGATIVE_STOCK", true)
	viper.SetDefault("LOW_STOCK_THRESHOLD", 10)
	viper.SetDefault("PDF_STORAGE_PATH", "tickets")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
