package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultTelegramBaseURL = "https://api.telegram.org"
	DefaultTelegramTimeout = 10 * time.Second
)

// NotificationConfig holds the credentials needed to reach the chat bot.
type NotificationConfig struct {
	BotToken string
	ChatID   string
}

// Complete reports whether both credentials are present.
func (n NotificationConfig) Complete() bool {
	return n.BotToken != "" && n.ChatID != ""
}

// NotificationProvider returns the credentials for the current request.
type NotificationProvider func() NotificationConfig

// NotificationFromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID.
// It is called per request so rotated secrets take effect without a restart.
func NotificationFromEnv() NotificationConfig {
	return NotificationConfig{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}

// StaticNotification returns a provider that always yields cfg.
func StaticNotification(cfg NotificationConfig) NotificationProvider {
	return func() NotificationConfig { return cfg }
}

// Config is the process-level configuration loaded once at start.
type Config struct {
	TelegramBaseURL  string
	TelegramTimeout  time.Duration
	Location         *time.Location
	LogLevel         logrus.Level
	MetricsNamespace string
	RunLocal         bool
	Port             string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	timeout, err := getEnvAsDuration("TELEGRAM_TIMEOUT", DefaultTelegramTimeout)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if tz := os.Getenv("ORDER_TIMEZONE"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid ORDER_TIMEZONE %q: %w", tz, err)
		}
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		TelegramBaseURL:  strings.TrimRight(getEnv("TELEGRAM_API_BASE_URL", DefaultTelegramBaseURL), "/"),
		TelegramTimeout:  timeout,
		Location:         loc,
		LogLevel:         level,
		MetricsNamespace: os.Getenv("METRICS_NAMESPACE"),
		RunLocal:         os.Getenv("RUN_LOCAL") == "true",
		Port:             getEnv("PORT", "8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.TelegramTimeout <= 0 {
		return fmt.Errorf("TELEGRAM_TIMEOUT must be positive, got %s", c.TelegramTimeout)
	}
	if !strings.HasPrefix(c.TelegramBaseURL, "http://") && !strings.HasPrefix(c.TelegramBaseURL, "https://") {
		return fmt.Errorf("TELEGRAM_API_BASE_URL must be an http(s) URL, got %q", c.TelegramBaseURL)
	}
	if c.RunLocal && c.Port == "" {
		return fmt.Errorf("PORT is required when RUN_LOCAL=true")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, valueStr, err)
	}
	return d, nil
}
