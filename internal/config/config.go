// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	Port           string        `mapstructure:"PORT"`
	GithubToken    string        `mapstructure:"GITHUB_TOKEN"`
	GithubBaseURL  string        `mapstructure:"GITHUB_BASE_URL"`
	AIGatewayURL   string        `mapstructure:"AI_GATEWAY_URL"`
	AIGatewayKey   string        `mapstructure:"AI_GATEWAY_KEY"`
	AIModel        string        `mapstructure:"AI_MODEL"`
	AITemperature  float64       `mapstructure:"AI_TEMPERATURE"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
}

// AIEnabled reports whether the AI-gateway relay is configured. The service
// runs fine without it; only the ?ai=true flag stops working.
func (c *Config) AIEnabled() bool {
	return c.AIGatewayURL != "" && c.AIGatewayKey != ""
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("AI_MODEL", "google/gemini-3-flash-preview")
	viper.SetDefault("AI_TEMPERATURE", 0.8)
	viper.SetDefault("REQUEST_TIMEOUT", "60s")

	// Load from .env file if it exists
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate
	if cfg.AITemperature < 0 || cfg.AITemperature > 2 {
		return nil, errors.New("AI_TEMPERATURE must be between 0 and 2")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be a positive duration")
	}
	if cfg.AIGatewayURL != "" && cfg.AIGatewayKey == "" {
		return nil, errors.New("AI_GATEWAY_KEY is required when AI_GATEWAY_URL is set")
	}

	return &cfg, nil
}
