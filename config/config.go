package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, read once from the environment in main
// and passed down explicitly.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	BasePath      string `env:"BASE_PATH" envDefault:"/auth-app"`
	SessionSecret string `env:"SESSION_SECRET,required"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`

	PGUser     string `env:"PG_USER" envDefault:"postgres"`
	PGPassword string `env:"PG_PASSWORD" envDefault:""`
	PGHost     string `env:"PG_HOST" envDefault:"localhost"`
	PGPort     int    `env:"PG_PORT" envDefault:"5432"`
	PGDatabase string `env:"PG_DATABASE" envDefault:"secrets"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleCallbackURL  string `env:"GOOGLE_CALLBACK_URL"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// DSN assembles the Postgres connection string from the PG_* settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.PGHost, c.PGUser, c.PGPassword, c.PGDatabase, c.PGPort)
}
