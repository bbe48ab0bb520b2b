package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wv0m56/http-client/nethttp"
)

type testConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	BaseURL string        `mapstructure:"base_url"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "timeout: 5s\nbase_url: http://example.com\n")

	var cfg testConfig
	if err := Load(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Timeout)
	}
	if cfg.BaseURL != "http://example.com" {
		t.Errorf("unexpected base_url: %q", cfg.BaseURL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "base_url: http://file.example.com\n")
	t.Setenv("HTTPCLIENT_BASE_URL", "http://env.example.com")

	var cfg testConfig
	if err := Load(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://env.example.com" {
		t.Errorf("expected env override, got %q", cfg.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	cfgPath := writeFile(t, "config.yml", "base_url: http://file.example.com\n")
	envPath := writeFile(t, "test.env", "HTTPCLIENT_BASE_URL=http://dotenv.example.com\n")
	t.Cleanup(func() { _ = os.Unsetenv("HTTPCLIENT_BASE_URL") })

	var cfg testConfig
	if err := Load(&cfg, WithConfigFile(cfgPath), WithEnvFile(envPath)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "http://dotenv.example.com" {
		t.Errorf("expected .env override, got %q", cfg.BaseURL)
	}
}

func TestLoad_NoFilesIsFine(t *testing.T) {
	cwd, _ := os.Getwd()
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	var cfg testConfig
	if err := Load(&cfg); err != nil {
		t.Errorf("unexpected error with no config files: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "timeout: [unclosed\n")

	var cfg testConfig
	if err := Load(&cfg, WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoad_ClientConfig(t *testing.T) {
	path := writeFile(t, "config.yml", `
name: upstream
timeout: 10s
max_idle_conns: 20
headers:
  accept: application/json
tls:
  skip_verify: true
`)

	var cfg nethttp.Config
	if err := Load(&cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
	if cfg.Name != "upstream" || cfg.Timeout != 10*time.Second || cfg.MaxIdleConns != 20 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Headers["accept"] != "application/json" {
		t.Errorf("headers not loaded: %v", cfg.Headers)
	}
	if cfg.TLS == nil || !cfg.TLS.SkipVerify {
		t.Error("tls section not loaded")
	}
}
