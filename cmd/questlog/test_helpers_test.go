package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"questlog/internal/config"
	"questlog/internal/testsupport"
)

type cliTestEnv struct {
	server     *fakeBackendServer
	configPath string
	cachePath  string
	baseDir    string
}

// fakeBackendServer is a stateful stand-in for the practice-question
// service: catalog reads, bulk and per-id progress reads, and progress
// writes that later reads observe.
type fakeBackendServer struct {
	mu        sync.Mutex
	questions []map[string]any
	progress  map[string]map[string]any // progressID -> record
	nextID    int

	httpServer *httptest.Server
}

func newFakeBackendServer(t *testing.T, questions []map[string]any) *fakeBackendServer {
	t.Helper()

	f := &fakeBackendServer{
		questions: questions,
		progress:  make(map[string]map[string]any),
		nextID:    1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/questions/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeBody(w, map[string]any{"data": f.questions})
	})
	mux.HandleFunc("/progress/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		id := strings.TrimPrefix(r.URL.Path, "/progress/")
		switch {
		case id == "" && r.Method == http.MethodGet:
			records := make([]map[string]any, 0, len(f.progress))
			for _, record := range f.progress {
				records = append(records, record)
			}
			writeBody(w, records)
		case id == "" && r.Method == http.MethodPost:
			var payload map[string]string
			_ = json.NewDecoder(r.Body).Decode(&payload)
			progressID := fmt.Sprintf("p%d", f.nextID)
			f.nextID++
			f.progress[progressID] = map[string]any{
				"_id":        progressID,
				"questionId": payload["questionId"],
				"status":     payload["status"],
			}
			writeBody(w, map[string]any{"data": map[string]any{"_id": progressID}})
		case r.Method == http.MethodGet:
			record, ok := f.progress[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeBody(w, record)
		case r.Method == http.MethodPut:
			record, ok := f.progress[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var payload map[string]string
			_ = json.NewDecoder(r.Body).Decode(&payload)
			record["status"] = payload["status"]
			writeBody(w, record)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	f.httpServer = httptest.NewServer(mux)
	t.Cleanup(f.httpServer.Close)
	return f
}

func writeBody(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func setupCLITestEnv(t *testing.T, questions []map[string]any) *cliTestEnv {
	t.Helper()

	server := newFakeBackendServer(t, questions)
	cfg := testsupport.NewConfig(t, testsupport.WithBaseURL(server.httpServer.URL))
	base := testsupport.BaseDir(cfg)
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		server:     server,
		configPath: configPath,
		cachePath:  cfg.Cache.Path,
		baseDir:    base,
	}
}

// writeTestConfig serializes the generated test config so the CLI can load
// it through the same path a user's file takes.
func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[backend]
base_url = %q
api_token = %q

[cache]
backend = %q
path = %q

[logging]
dir = %q
`, cfg.Backend.BaseURL, cfg.Backend.APIToken, cfg.Cache.Backend, cfg.Cache.Path, cfg.Logging.Dir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}
