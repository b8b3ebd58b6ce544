package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisChatDB    int    `mapstructure:"REDIS_CHAT_DB"`
	RedisRecordsDB int    `mapstructure:"REDIS_RECORDS_DB"`

	// Gemini chat configuration.
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	ChatTimeoutSeconds int    `mapstructure:"CHAT_TIMEOUT_SECONDS"`

	// Simulated catalog latency in milliseconds (capped at 2000).
	CatalogDelayMs int `mapstructure:"CATALOG_DELAY_MS"`

	// DemoMode serves the canned status record when no booking exists
	// for a phone number.
	DemoMode bool `mapstructure:"DEMO_MODE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CHAT_DB", 1)
	viper.SetDefault("REDIS_RECORDS_DB", 2)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CHAT_TIMEOUT_SECONDS", 5)
	viper.SetDefault("CATALOG_DELAY_MS", 0)
	viper.SetDefault("DEMO_MODE", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
