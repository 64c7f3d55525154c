// config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	AppURL      string `env:"APP_URL" envDefault:"https://yurayurastudio.com"`

	// MongoDB
	MongoURI string `env:"MONGO_URI"`
	DBName   string `env:"DB_NAME" envDefault:"yurayura"`

	// Redis
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	RewardCacheTTL time.Duration `env:"REWARD_CACHE_TTL" envDefault:"5m"`

	// Auth
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// SMTP; mail is disabled when SMTPHost is empty
	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"2525"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	MailFrom string `env:"MAIL_FROM"`

	// Firebase; push is disabled when no credentials are configured
	FirebaseProjectID         string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsBase64 string `env:"FIREBASE_CREDENTIALS_BASE64"`
	FirebaseCredentialsFile   string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads .env (if present) and parses the environment into a Config
func Load() (*Config, error) {
	// A missing .env file is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Environment == "test" {
		return nil
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.MongoURI == "" && !c.IsDevelopment() {
		return fmt.Errorf("MONGO_URI is required outside development")
	}
	return nil
}

// IsDevelopment reports whether the service runs in a local development environment
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Environment)
	return env == "development" || env == "dev"
}

// MailEnabled reports whether SMTP delivery is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// MailSender returns the From address for outgoing mail
func (c *Config) MailSender() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.SMTPUser
}
