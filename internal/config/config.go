package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken    string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN            string        `mapstructure:"DB_DSN"`
	Environment      string        `mapstructure:"ENV"`
	HTTPAddr         string        `mapstructure:"HTTP_ADDR"`
	MigrationsDir    string        `mapstructure:"MIGRATIONS_DIR"`
	BookingDialogTTL time.Duration `mapstructure:"BOOKING_DIALOG_TTL"`
	SweepInterval    time.Duration `mapstructure:"SWEEP_INTERVAL"`
}

const (
	defaultEnvironment      = "development"
	defaultHTTPAddr         = ":8080"
	defaultMigrationsDir    = "migrations"
	defaultBookingDialogTTL = 30 * time.Minute
	defaultSweepInterval    = 5 * time.Minute
)

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv читает конфигурацию из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Environment:   os.Getenv("ENV"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
	}

	// Пустой HTTP_ADDR отключает HTTP API, поэтому отличаем "не задан" от "пустой"
	if addr, ok := os.LookupEnv("HTTP_ADDR"); ok {
		cfg.HTTPAddr = addr
	} else {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = defaultMigrationsDir
	}

	var err error
	cfg.BookingDialogTTL, err = durationEnv("BOOKING_DIALOG_TTL", defaultBookingDialogTTL)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval, err = durationEnv("SWEEP_INTERVAL", defaultSweepInterval)
	if err != nil {
		return nil, err
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// IsProduction проверяет, запущен ли бот в production окружении
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}

	return d, nil
}
