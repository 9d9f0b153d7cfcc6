package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every process-wide setting. It is built once in main and
// handed to the packages that need it; nothing reads the environment after
// startup.
type Config struct {
	Port          string        `mapstructure:"port"`
	DatabaseURL   string        `mapstructure:"database_url"`
	MigrationsURL string        `mapstructure:"migrations_url"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	OCRBaseURL    string        `mapstructure:"ocr_base_url"`
	Environment   string        `mapstructure:"environment"`
}

// Load reads configuration from the environment, with an optional
// config.yaml alongside the binary. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("migrations_url", "file://migrations")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", time.Hour)
	v.SetDefault("ocr_base_url", "http://localhost:5001")
	v.SetDefault("environment", "production")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is required")
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
