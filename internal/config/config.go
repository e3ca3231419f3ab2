package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the web server, read from the environment.
type Config struct {
	// Port resolution: prefer CHUMIDEX_WEB_PORT, then Cloud Run's PORT, else 8080.
	Port      string `env:"CHUMIDEX_WEB_PORT"`
	CloudPort string `env:"PORT"`

	Dev          bool   `env:"CHUMIDEX_WEB_DEV"`
	TemplatesDir string `env:"CHUMIDEX_WEB_TEMPLATES_DIR"`
	Env          string `env:"CHUMIDEX_WEB_ENV" envDefault:"dev"`
	BaseURL      string `env:"CHUMIDEX_WEB_BASE_URL" envDefault:"http://localhost:8080"`
	DefaultLang  string `env:"CHUMIDEX_WEB_DEFAULT_LANG" envDefault:"en"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	ShutdownTimeout time.Duration `env:"CHUMIDEX_WEB_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"CHUMIDEX_WEB_REQUEST_TIMEOUT" envDefault:"30s"`

	Analytics Analytics
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string `env:"CHUMIDEX_WEB_GA_MEASUREMENT_ID"` // e.g. G-XXXXXXXXXX
	GTMContainerID   string `env:"CHUMIDEX_WEB_GTM_CONTAINER_ID"`  // e.g. GTM-XXXXXXX
	Debug            bool   `env:"CHUMIDEX_WEB_ANALYTICS_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and normalizes it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.DefaultLang = strings.ToLower(strings.TrimSpace(cfg.DefaultLang))
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = c.CloudPort
	}
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// IsProd reports whether the server runs in the production environment.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod")
}
