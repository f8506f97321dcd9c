// Package config loads pipeline configuration from environment variables,
// with an optional .env file for local development.
//
// Only the translation pipeline is configurable. The launcher (serve
// command) deliberately takes no configuration: its port, URL, and
// interpreter candidates are fixed constants by contract.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the lcpp pipeline commands.
type Config struct {
	// RedisURL, when non-empty, selects the Redis-backed translation
	// cache instead of the JSON file store.
	RedisURL string `json:"redis_url"`

	// RedisPrefix namespaces cache keys in Redis.
	RedisPrefix string `json:"redis_prefix"`

	// SourceLang is the default source language for translation requests
	// ("en" or "auto").
	SourceLang string `json:"source_lang"`

	// TargetLang is the translation target language.
	TargetLang string `json:"target_lang"`

	// HTTPTimeout bounds a single translation request.
	HTTPTimeout time.Duration `json:"http_timeout"`

	// BatchMaxLen caps the character length of a batched translation
	// payload, markers included.
	BatchMaxLen int `json:"batch_max_len"`

	// MaxRetries is the number of attempts per translation request.
	MaxRetries int `json:"max_retries"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogPretty bool   `json:"log_pretty"`
}

// Load loads configuration from environment variables, preceded by a
// best-effort .env load. Every field has a working default, so Load
// never fails — malformed values are logged and replaced by defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	return &Config{
		RedisURL:    getEnv("LCPP_REDIS_URL", ""),
		RedisPrefix: getEnv("LCPP_REDIS_PREFIX", "lcpp:tr:"),

		SourceLang:  getEnv("LCPP_SOURCE_LANG", "en"),
		TargetLang:  getEnv("LCPP_TARGET_LANG", "pl"),
		HTTPTimeout: getEnvAsDuration("LCPP_HTTP_TIMEOUT", 30*time.Second),
		BatchMaxLen: getEnvAsInt("LCPP_BATCH_MAX", 3800),
		MaxRetries:  getEnvAsInt("LCPP_MAX_RETRIES", 5),

		LogLevel:  getEnv("LCPP_LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LCPP_LOG_PRETTY", true),
	}
}

// Helper functions for environment variable handling.

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
