package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port  int    `env:"APP_PORT" envDefault:"8888"`
	Host  string `env:"HOST" envDefault:"0.0.0.0"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`

	// FetchTimeout bounds each outbound call to YouTube.
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	DefaultLanguages string        `env:"DEFAULT_LANGUAGES" envDefault:"ko,en"`

	AuthToken      string   `env:"AUTH_TOKEN"`
	CORSOrigins    []string `env:"CORS_ORIGINS" envSeparator:","`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"10"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Overrides holds CLI flag values that take priority over env vars.
type Overrides struct {
	EnvFile  string
	Port     int
	Host     string
	LogLevel string
}

// Load reads configuration from .env file, environment variables, and CLI
// overrides. Priority: CLI flags > environment variables > .env file >
// struct defaults.
func Load(overrides Overrides) (*Config, error) {
	// Load .env file (silent if missing)
	envFile := overrides.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Plain PORT is honored when APP_PORT is not set.
	if _, ok := os.LookupEnv("APP_PORT"); !ok {
		if v, ok := os.LookupEnv("PORT"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				cfg.Port = n
			}
		}
	}

	// Apply CLI overrides (non-zero values win)
	if overrides.Port != 0 {
		cfg.Port = overrides.Port
	}
	if overrides.Host != "" {
		cfg.Host = overrides.Host
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DefaultLanguageList returns the configured default language preference
// order, whitespace-trimmed.
func (c *Config) DefaultLanguageList() []string {
	parts := strings.Split(c.DefaultLanguages, ",")
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			langs = append(langs, p)
		}
	}
	return langs
}
