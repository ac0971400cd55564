package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every process-wide setting. It is loaded once in main and
// passed down explicitly; nothing else reads the environment.
type Config struct {
	Port          string        `env:"PORT" env-default:"8000"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" env-default:"60m"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	SMTPHost      string        `env:"SMTP_HOST"`
	SMTPPort      int           `env:"SMTP_PORT" env-default:"587"`
	EmailUser     string        `env:"EMAIL_USER"`
	EmailPass     string        `env:"EMAIL_PASS"`
	CloudinaryURL string        `env:"CLOUDINARY_URL"`
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return &cfg, nil
}
