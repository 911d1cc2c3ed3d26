package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация адреса реестра
	if c.RegistryBaseURL == "" {
		errors = append(errors, "registry base URL is required")
	} else if _, err := url.ParseRequestURI(c.RegistryBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid registry base URL: %s", c.RegistryBaseURL))
	}

	// Валидация таймаутов и интервалов
	if c.RequestTimeout < time.Second {
		errors = append(errors, "request timeout must be at least 1 second")
	}
	if c.BatchSpacing < 0 {
		errors = append(errors, "batch spacing cannot be negative")
	}

	// Валидация лимитов
	if c.MaxBatchSize < 1 {
		errors = append(errors, "max batch size must be at least 1")
	}
	if c.SearchLimit < 1 || c.SearchLimit > 200 {
		errors = append(errors, fmt.Sprintf("search limit must be between 1 and 200, got %d", c.SearchLimit))
	}

	// Валидация уровня логирования
	validLogLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range validLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(validLogLevels, ", ")))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:            "8080",
		RegistryBaseURL: "https://npiregistry.cms.hhs.gov/api/",
		RequestTimeout:  10 * time.Second,
		BatchSpacing:    100 * time.Millisecond,
		MaxBatchSize:    500,
		SearchLimit:     50,
		LogLevel:        "INFO",
	}
}
