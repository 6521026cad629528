package idcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"questlog/internal/logging"
)

// FileStore keeps the id map in a flat JSON file. The file is created
// lazily on first merge; writes are atomic via temp file and rename, and a
// sibling lock file serializes merges across processes.
type FileStore struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewFileStore builds a FileStore rooted at the provided path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "idcache"),
	}
}

// Load reads the persisted map. A missing, empty, or unparseable file
// resolves to an empty map.
func (s *FileStore) Load(ctx context.Context) (map[string]string, error) {
	return s.read(), nil
}

// Merge folds the given entries into the persisted map under the file lock.
func (s *FileStore) Merge(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	defer s.lock.Unlock()

	// Re-read under the lock so entries merged by a concurrent process
	// since our load are kept.
	merged := s.read()
	for questionID, progressID := range entries {
		if strings.TrimSpace(questionID) == "" || strings.TrimSpace(progressID) == "" {
			continue
		}
		merged[questionID] = progressID
	}

	return s.write(merged)
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() map[string]string {
	empty := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read id cache, starting empty",
				logging.String("path", s.path),
				logging.Error(err))
		}
		return empty
	}
	if len(data) == 0 {
		return empty
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("id cache is corrupt, starting empty",
			logging.String("path", s.path),
			logging.Error(err))
		return empty
	}
	if entries == nil {
		return empty
	}
	return entries
}

func (s *FileStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal id cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("persisted id cache",
		logging.Int("entry_count", len(entries)),
		logging.String("path", s.path))
	return nil
}
