package testsupport

import (
	"testing"

	"questlog/internal/config"
	"questlog/internal/idcache"
)

// MustOpenStore opens an idcache.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) idcache.Store {
	t.Helper()

	store, err := idcache.Open(cfg, nil)
	if err != nil {
		t.Fatalf("idcache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
