// Package config reads process settings from the environment. Callers load
// .env with godotenv before calling Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port string
	Env  string

	DB DatabaseConfig

	RedisAddr   string
	KafkaBroker string

	JWTSecret string
	TokenTTL  time.Duration

	OutboxPollInterval time.Duration

	LoginRatePerSec float64
	LoginBurst      int
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RequireKafka is checked by the worker and consumer only; the API writes
// to the outbox table and never talks to the broker.
func (c *Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "development"),
		DB: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	for key, val := range map[string]string{
		"DB_HOST":    cfg.DB.Host,
		"DB_USER":    cfg.DB.User,
		"DB_NAME":    cfg.DB.Name,
		"JWT_SECRET": cfg.JWTSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.OutboxPollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return nil, err
	}

	if raw := os.Getenv("LOGIN_RATE_PER_SEC"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid LOGIN_RATE_PER_SEC: %q", raw)
		}
		cfg.LoginRatePerSec = v
	} else {
		cfg.LoginRatePerSec = 1
	}

	if raw := os.Getenv("LOGIN_BURST"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid LOGIN_BURST: %q", raw)
		}
		cfg.LoginBurst = v
	} else {
		cfg.LoginBurst = 5
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
