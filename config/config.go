package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	EnvPrefix = "INTEREST"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type HistoryConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

type DisplayConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
	DateLayout     string `mapstructure:"date_layout"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	History   HistoryConfig   `mapstructure:"history"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Display   DisplayConfig   `mapstructure:"display"`
}

var defaults = map[string]interface{}{
	"server.addr":             ":8080",
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,
	"rate_limit.capacity":     5,
	"rate_limit.window":       time.Minute,
	"history.backend":         BackendMemory,
	"redis.addr":              "localhost:6379",
	"redis.password":          "",
	"redis.db":                0,
	"redis.key":               "interest-calculator:history",
	"log.level":               "info",
	"log.development":         false,
	"log.file":                "",
	"display.currency_symbol": "₹",
	"display.locale":          "en-IN",
	"display.date_layout":     "1/2/2006",
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. A .env file in the
// working directory is loaded into the environment first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return errors.New("server.addr is empty")
	}
	if cfg.Server.ReadTimeout <= 0 || cfg.Server.WriteTimeout <= 0 || cfg.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("invalid server.shutdown_timeout")
	}
	if cfg.RateLimit.Capacity <= 0 {
		return errors.New("invalid rate_limit.capacity")
	}
	if cfg.RateLimit.Window <= 0 {
		return errors.New("invalid rate_limit.window")
	}
	switch cfg.History.Backend {
	case BackendMemory:
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis history backend")
		}
	default:
		return fmt.Errorf("unknown history.backend %q", cfg.History.Backend)
	}
	return nil
}
