package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config holds the process configuration read from the environment.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RabbitMQURL           string
	NotificationsExchange string
	LowStockThreshold     int
	LowStockCron          string
	LogLevel              slog.Level
	SuperAdminName        string
	SuperAdminEmail       string
}

// Defaults for optional settings.
const (
	DefaultHTTPPort          = "8080"
	DefaultDBSslMode         = "disable"
	DefaultLowStockThreshold = 5
)

// ConfigFromEnv reads the configuration through getenv, usually os.Getenv after godotenv
// has loaded an optional .env file. DB_HOST, DB_PORT, DB_USER and DB_NAME are required.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:              valueOr(getenv("HTTP_PORT"), DefaultHTTPPort),
		DBHost:                getenv("DB_HOST"),
		DBPort:                getenv("DB_PORT"),
		DBUser:                getenv("DB_USER"),
		DBPassword:            getenv("DB_PASSWORD"),
		DBName:                getenv("DB_NAME"),
		DBSslMode:             valueOr(getenv("DB_SSLMODE"), DefaultDBSslMode),
		RabbitMQURL:           getenv("RABBITMQ_URL"),
		NotificationsExchange: getenv("NOTIFICATIONS_EXCHANGE"),
		LowStockThreshold:     DefaultLowStockThreshold,
		LowStockCron:          getenv("LOW_STOCK_CRON"),
		SuperAdminName:        valueOr(getenv("SUPERADMIN_NAME"), "Administrator"),
		SuperAdminEmail:       getenv("SUPERADMIN_EMAIL"),
	}

	var problems []error
	for key, value := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_PORT": cfg.DBPort,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if value == "" {
			problems = append(problems, fmt.Errorf("%s is required", key))
		}
	}

	if raw := getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			problems = append(problems, fmt.Errorf("LOW_STOCK_THRESHOLD must be a positive number, got %q", raw))
		} else {
			cfg.LowStockThreshold = n
		}
	}

	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(raw))); err != nil {
			problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
