package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL,required"`
	BaseURL     string        `env:"BASE_URL,required"`
	AuthSecret  string        `env:"AUTH_SECRET,required"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	GinMode     string        `env:"GIN_MODE" envDefault:"debug"`

	// AdminEmails promotes matching users to admin when they sign in.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	GoogleClientID         string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret     string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL      string `env:"GOOGLE_REDIRECT_URL"`
	GoogleFrontendRedirect string `env:"GOOGLE_FRONTEND_REDIRECT"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`

	PublicWriteRPS   float64 `env:"PUBLIC_WRITE_RPS" envDefault:"1"`
	PublicWriteBurst int     `env:"PUBLIC_WRITE_BURST" envDefault:"5"`
}

// Load reads an optional .env file and parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}
