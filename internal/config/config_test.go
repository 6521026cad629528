package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultNormalizesAndValidates(t *testing.T) {
	cfg := Default()
	cfg.Backend.BaseURL = "http://api.local:4029/"
	cfg.Backend.APIToken = "tok"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if cfg.Backend.BaseURL != "http://api.local:4029" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.Backend.BaseURL)
	}
	if cfg.Cache.Path == "" || strings.HasPrefix(cfg.Cache.Path, "~") {
		t.Errorf("Cache.Path = %q, want expanded default", cfg.Cache.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[backend]
base_url = "http://api.local:4029"
api_token = "file-token"

[endpoints]
progress_get = "/progress/{id}"

[cache]
backend = "sqlite"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded || resolved != path {
		t.Errorf("loaded=%v resolved=%q", loaded, resolved)
	}
	if cfg.Endpoints.ProgressGet != "/progress/{id}" {
		t.Errorf("ProgressGet = %q", cfg.Endpoints.ProgressGet)
	}
	if cfg.Endpoints.Questions != "/questions/" {
		t.Errorf("Questions = %q, want default preserved", cfg.Endpoints.Questions)
	}
	if !strings.HasSuffix(cfg.Cache.Path, "progress_ids.db") {
		t.Errorf("Cache.Path = %q, want sqlite default", cfg.Cache.Path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QUESTLOG_API_TOKEN", "env-token")
	t.Setenv("QUESTLOG_BASE_URL", "http://env.local")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[backend]\napi_token = \"file-token\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend.APIToken != "env-token" {
		t.Errorf("APIToken = %q, want env override", cfg.Backend.APIToken)
	}
	if cfg.Backend.BaseURL != "http://env.local" {
		t.Errorf("BaseURL = %q, want env override", cfg.Backend.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() Config {
		cfg := Default()
		cfg.Backend.BaseURL = "http://api.local"
		cfg.Backend.APIToken = "tok"
		if err := cfg.normalize(); err != nil {
			t.Fatalf("normalize failed: %v", err)
		}
		return cfg
	}

	cfg := base()
	cfg.Backend.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing base url")
	}

	cfg = base()
	cfg.Backend.BaseURL = "ftp://api.local"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-http scheme")
	}

	cfg = base()
	cfg.Backend.APIToken = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing token")
	}

	cfg = base()
	cfg.Cache.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown cache backend")
	}

	cfg = base()
	cfg.Logging.Format = "yaml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandPath = %q", got)
	}
}
