package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/limbo/attendance/pkg/entity"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is not fatal: values may
// come from the process environment instead.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(defaultEnvPath)
		if err != nil {
			slog.Warn("env file not loaded, using process environment", slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func (c *Config) GetInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("invalid int in config, using fallback", slog.String("key", key), slog.Int("fallback", fallback))
		return fallback
	}
	return parsed
}

func (c *Config) GetBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		slog.Warn("invalid bool in config, using fallback", slog.String("key", key), slog.Bool("fallback", fallback))
		return fallback
	}
	return parsed
}

func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		slog.Warn("invalid duration in config, using fallback", slog.String("key", key), slog.Duration("fallback", fallback))
		return fallback
	}
	return d
}

// GetWeekday accepts English weekday names in any case ("sunday", "Monday").
func (c *Config) GetWeekday(key string, fallback time.Weekday) time.Weekday {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	wd, err := entity.ParseWeekday(val)
	if err != nil {
		slog.Warn("invalid weekday in config, using fallback", slog.String("key", key), slog.String("fallback", fallback.String()))
		return fallback
	}
	return wd
}

// GetLocation resolves an IANA zone name; empty means UTC.
func (c *Config) GetLocation(key string) *time.Location {
	val := os.Getenv(key)
	if val == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(val)
	if err != nil {
		slog.Warn("unknown time zone in config, using UTC", slog.String("key", key), slog.String("value", val))
		return time.UTC
	}
	return loc
}
