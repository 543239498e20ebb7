package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	Env           string `mapstructure:"GO_ENV"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	BaseURL       string `mapstructure:"BASE_URL"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	FrontendURL   string `mapstructure:"FRONTEND_URL"`
}

// Load reads configuration from a .env file when present, with environment
// variables taking precedence. The returned value is passed explicitly to the
// components that need it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Missing .env is fine; environment variables alone are enough.
	_ = v.ReadInConfig()

	for _, key := range []string{
		"PORT", "GO_ENV", "DATABASE_URL", "JWT_SECRET",
		"BASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "FRONTEND_URL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	return cfg, nil
}
