package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHUMIDEX_WEB_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Addr(); got != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", got)
	}
	if cfg.DefaultLang != "en" {
		t.Fatalf("expected default lang en, got %s", cfg.DefaultLang)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected shutdown timeout 10s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.IsProd() {
		t.Fatal("expected non-prod default environment")
	}
}

func TestAddrPrefersServicePort(t *testing.T) {
	t.Setenv("CHUMIDEX_WEB_PORT", "9000")
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Addr(); got != ":9000" {
		t.Fatalf("expected :9000, got %s", got)
	}
}

func TestAddrFallsBackToCloudPort(t *testing.T) {
	t.Setenv("CHUMIDEX_WEB_PORT", "")
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Addr(); got != ":7000" {
		t.Fatalf("expected :7000, got %s", got)
	}
}

func TestLoadTrimsBaseURL(t *testing.T) {
	t.Setenv("CHUMIDEX_WEB_BASE_URL", " https://chumidex.example/ ")
	t.Setenv("CHUMIDEX_WEB_DEFAULT_LANG", "SW")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "https://chumidex.example" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.DefaultLang != "sw" {
		t.Fatalf("expected lowercased lang, got %q", cfg.DefaultLang)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("CHUMIDEX_WEB_DEV", "not-a-bool")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
