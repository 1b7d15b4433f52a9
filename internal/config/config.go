package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultValidityMinutes     = 30
	DefaultCodeLength          = 5
	DefaultMaxAttempts         = 10
	DefaultLocationPlaceholder = "unknown (simulated)"
)

// RetryConfig настройки повторной генерации кода при коллизиях
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// Config конфигурация сервиса. Значения по умолчанию переопределяются флагами,
// флаги переопределяются переменными окружения.
type Config struct {
	ServerAddress       NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL             URLPrefix      `env:"BASE_URL"`
	DefaultValidity     int            `env:"DEFAULT_VALIDITY_MINUTES"`
	CodeLength          int            `env:"CODE_LENGTH"`
	LocationPlaceholder string         `env:"LOCATION_PLACEHOLDER"`
	GeoHeader           string         `env:"GEO_HEADER"`
	LogLevel            string         `env:"LOG_LEVEL"`
	ShutdownTimeout     time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry               RetryConfig
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:       NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:             URLPrefix("http://localhost:8080"),
		DefaultValidity:     DefaultValidityMinutes,
		CodeLength:          DefaultCodeLength,
		LocationPlaceholder: DefaultLocationPlaceholder,
		LogLevel:            "info",
		ShutdownTimeout:     10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
	}
}

// Load собирает конфигурацию из .env, аргументов командной строки и окружения
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := NewDefaultConfig()

	flags := flag.NewFlagSet("shortener", flag.ContinueOnError)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.BaseURL, "b", "base URL for short links")
	flags.IntVar(&cfg.DefaultValidity, "v", cfg.DefaultValidity, "default link validity in minutes")
	flags.IntVar(&cfg.CodeLength, "l", cfg.CodeLength, "length of generated shortcodes")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет, что числовые параметры имеют смысл
func (c *Config) Validate() error {
	if c.DefaultValidity <= 0 {
		return fmt.Errorf("default validity must be positive, got %d", c.DefaultValidity)
	}

	if c.CodeLength <= 0 {
		return fmt.Errorf("code length must be positive, got %d", c.CodeLength)
	}

	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}

	return nil
}
