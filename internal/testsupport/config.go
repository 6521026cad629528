package testsupport

import (
	"path/filepath"
	"testing"

	"questlog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Backend.BaseURL = "http://backend.test"
	cfgVal.Backend.APIToken = "test-token"
	cfgVal.Cache.Path = filepath.Join(base, "progress_ids.json")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBaseURL points the test config at a live server, usually httptest.
func WithBaseURL(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Backend.BaseURL = baseURL
	}
}

// WithAPIToken sets the bearer credential on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Backend.APIToken = token
	}
}

// WithSQLiteCache switches the test config to the sqlite cache backend.
func WithSQLiteCache() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Cache.Backend = "sqlite"
		b.cfg.Cache.Path = filepath.Join(b.baseDir, "progress_ids.db")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Cache.Path)
}
