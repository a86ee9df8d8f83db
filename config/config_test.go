package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := build(newViper())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected 5s shutdown timeout, got %s", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo uri %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.ConnectTimeout != 10*time.Second {
		t.Errorf("expected 10s connect timeout, got %s", cfg.Mongo.ConnectTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestEnvShortcuts(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db:27017/app")
	t.Setenv("MONGO_DATABASE", "catalog")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.dev, http://b.dev")

	v := newViper()
	bindEnv(v)
	cfg, err := build(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8081 {
		t.Errorf("expected PORT override, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Mongo.URI != "mongodb://db:27017/app" {
		t.Errorf("expected MONGO_URI override, got %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "catalog" {
		t.Errorf("expected MONGO_DATABASE override, got %q", cfg.Mongo.Database)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.dev" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	t.Run("Bad Port", func(t *testing.T) {
		v := newViper()
		v.Set("http_server.port", -1)
		if _, err := build(v); err == nil {
			t.Errorf("expected error for negative port")
		}
	})

	t.Run("Empty Mongo URI", func(t *testing.T) {
		v := newViper()
		v.Set("mongo.uri", "")
		if _, err := build(v); err == nil {
			t.Errorf("expected error for empty mongo uri")
		}
	})
}

func TestAllowedOriginsFromYAMLList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "cors:\n  allowed_origins:\n    - https://app.example\n    - https://admin.example\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}
	cfg, err := build(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"https://app.example", "https://admin.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	for i := range want {
		if cfg.CORS.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.CORS.AllowedOrigins[i])
		}
	}
}

func TestAllowedOriginsFromInlineYAMLList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cors:\n  allowed_origins: [https://app.example]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}
	cfg, err := build(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://app.example" {
		t.Errorf("expected [https://app.example], got %v", cfg.CORS.AllowedOrigins)
	}
}
