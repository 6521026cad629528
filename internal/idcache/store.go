package idcache

import (
	"context"
	"fmt"
	"log/slog"

	"questlog/internal/config"
)

// Store is the durable questionId -> progressId mapping.
type Store interface {
	// Load returns the persisted map. Missing or corrupt data resolves to
	// an empty map, not an error.
	Load(ctx context.Context) (map[string]string, error)
	// Merge adds or overwrites the given entries and persists the result.
	// Existing entries absent from the input are retained.
	Merge(ctx context.Context, entries map[string]string) error
	Close() error
}

// Open constructs the store selected by configuration.
func Open(cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		return OpenSQLite(cfg.Cache.Path)
	case "json":
		return NewFileStore(cfg.Cache.Path, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
