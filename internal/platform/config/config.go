package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DatabaseURL is the Postgres backing source for the deal store.
	// When empty the store falls back to the built-in seed loader.
	DatabaseURL   string
	RunMigrations bool

	JWTSecret string

	// RateLimit uses the limiter formatted syntax, e.g. "200-M".
	RateLimit string

	// CORSOrigins is a comma-separated allowlist; "*" allows any origin.
	CORSOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "200-M")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Deal store will use the built-in seed loader.")
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}
