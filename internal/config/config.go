package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Backend contains the practice-question service location and credential.
type Backend struct {
	BaseURL string `toml:"base_url"`
	// APIToken is the opaque bearer credential. How it was obtained is not
	// this tool's concern.
	APIToken       string `toml:"api_token"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Endpoints contains the per-operation path templates. Single-entity
// templates use an ":id" or "{id}" placeholder. Absolute http(s) values
// bypass the base URL.
type Endpoints struct {
	Questions      string `toml:"questions"`
	QuestionCreate string `toml:"question_create"`
	QuestionUpdate string `toml:"question_update"`
	QuestionDelete string `toml:"question_delete"`
	ProgressList   string `toml:"progress_list"`
	ProgressGet    string `toml:"progress_get"`
	ProgressCreate string `toml:"progress_create"`
	ProgressUpdate string `toml:"progress_update"`
}

// Cache contains placement of the durable questionId -> progressId map.
type Cache struct {
	Backend string `toml:"backend"` // "json" or "sqlite"
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for questlog.
type Config struct {
	Backend   Backend   `toml:"backend"`
	Endpoints Endpoints `toml:"endpoints"`
	Cache     Cache     `toml:"cache"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/questlog/config.toml")
}

// Load locates, parses, normalizes, and validates a configuration file.
// When path is empty the default location is used; a missing file there
// resolves to defaults plus environment overrides. It returns the config,
// the path consulted, and whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	resolvedPath := strings.TrimSpace(path)
	explicit := resolvedPath != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
		resolvedPath = defaultPath
	} else {
		expanded, err := expandPath(resolvedPath)
		if err != nil {
			return nil, "", false, err
		}
		resolvedPath = expanded
	}

	cfg := Default()
	loaded := false

	data, err := os.ReadFile(resolvedPath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, resolvedPath, false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return nil, resolvedPath, false, fmt.Errorf("config file %s not found", resolvedPath)
		}
	default:
		return nil, resolvedPath, false, fmt.Errorf("read config %s: %w", resolvedPath, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.normalize(); err != nil {
		return nil, resolvedPath, loaded, err
	}

	return &cfg, resolvedPath, loaded, nil
}

func (c *Config) applyEnvOverrides() {
	if token := strings.TrimSpace(os.Getenv("QUESTLOG_API_TOKEN")); token != "" {
		c.Backend.APIToken = token
	}
	if base := strings.TrimSpace(os.Getenv("QUESTLOG_BASE_URL")); base != "" {
		c.Backend.BaseURL = base
	}
}

// EnsureDirectories creates the directories the cache and logs live in.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Cache.Path)}
	if c.Logging.Dir != "" {
		dirs = append(dirs, c.Logging.Dir)
	}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ prefixes and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	trimmed := strings.TrimSpace(pathValue)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", trimmed, err)
	}
	return abs, nil
}
