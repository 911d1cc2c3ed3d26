package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Реестр NPPES
	RegistryBaseURL string        `json:"registry_base_url"`
	RequestTimeout  time.Duration `json:"request_timeout"`

	// Пакетная обработка
	BatchSpacing time.Duration `json:"batch_spacing"`
	MaxBatchSize int           `json:"max_batch_size"`

	// Поиск
	SearchLimit int `json:"search_limit"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "8080"),

		// Реестр NPPES
		RegistryBaseURL: getEnv("NPI_REGISTRY_BASE_URL", "https://npiregistry.cms.hhs.gov/api/"),
		RequestTimeout:  getEnvDuration("NPI_REQUEST_TIMEOUT", 10*time.Second),

		// Пакетная обработка
		BatchSpacing: getEnvDuration("NPI_BATCH_SPACING", 100*time.Millisecond),
		MaxBatchSize: getEnvInt("NPI_MAX_BATCH_SIZE", 500),

		// Поиск
		SearchLimit: getEnvInt("NPI_SEARCH_LIMIT", 50),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	// Валидация
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
