package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища целей и транзакций
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config содержит конфигурацию приложения
type Config struct {
	MaxPrincipal    float64
	MaxRate         float64
	MaxTermYears    float64
	MaxGoalAmount   float64
	MaxSavingMonths int

	StorageBackend  string
	StoragePath     string
	RedisAddr       string
	GoalsKey        string
	TransactionsKey string
	Currency        string

	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		MaxTermYears:    getEnvFloat("MAX_TERM_YEARS", 50),
		MaxGoalAmount:   getEnvFloat("MAX_GOAL_AMOUNT", 1e12),
		MaxSavingMonths: getEnvInt("MAX_SAVING_MONTHS", 1200),
		StorageBackend:  strings.ToLower(getEnvString("STORAGE_BACKEND", StorageFile)),
		StoragePath:     getEnvString("STORAGE_PATH", ".loangoals"),
		RedisAddr:       getEnvString("REDIS_ADDR", "localhost:6379"),
		GoalsKey:        getEnvString("GOALS_KEY", "qazinv_goals"),
		TransactionsKey: getEnvString("TRANSACTIONS_KEY", "qazinv_transactions"),
		Currency:        strings.ToUpper(getEnvString("CURRENCY", "KZT")),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "loan-goals"),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		LogFormat:       getEnvString("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageMemory, StorageFile, StorageSQLite, StorageRedis:
	default:
		return fmt.Errorf("STORAGE_BACKEND: неизвестное хранилище %q", c.StorageBackend)
	}
	if c.GoalsKey == "" || c.TransactionsKey == "" {
		return fmt.Errorf("GOALS_KEY и TRANSACTIONS_KEY не могут быть пустыми")
	}
	if c.MaxPrincipal <= 0 || c.MaxRate <= 0 || c.MaxTermYears <= 0 || c.MaxGoalAmount <= 0 {
		return fmt.Errorf("лимиты MAX_* должны быть положительными")
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Default возвращает конфигурацию со значениями по умолчанию без чтения окружения
func Default() *Config {
	return &Config{
		MaxPrincipal:    1e9,
		MaxRate:         200,
		MaxTermYears:    50,
		MaxGoalAmount:   1e12,
		MaxSavingMonths: 1200,
		StorageBackend:  StorageMemory,
		GoalsKey:        "qazinv_goals",
		TransactionsKey: "qazinv_transactions",
		Currency:        "KZT",
		OTELServiceName: "loan-goals",
		LogLevel:        "info",
		LogFormat:       "console",
	}
}
