package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"questlog/internal/idcache"
	"questlog/internal/logging"
	"questlog/internal/normalize"
	"questlog/internal/progress"
)

// ErrProgressIDRequired is returned when a solved/attempted transition is
// requested for a question that has no cached progress identifier. The
// initial attempt has to happen first, in this session or a cached one.
var ErrProgressIDRequired = errors.New("no progress id recorded for this question; begin an attempt first")

// Backend is the slice of the HTTP client the engine depends on.
type Backend interface {
	FetchQuestions(ctx context.Context) ([]normalize.Question, error)
	FetchAllProgress(ctx context.Context) ([]normalize.ProgressRecord, error)
	FetchProgressByID(ctx context.Context, progressID string) (*normalize.ProgressRecord, error)
	CreateProgress(ctx context.Context, questionID string, status progress.Status) (string, error)
	UpdateProgress(ctx context.Context, progressID, questionID string, status progress.Status) error
}

// Engine reconciles server-reported progress with the persisted id cache.
type Engine struct {
	backend Backend
	store   idcache.Store
	logger  *slog.Logger

	// ids is the in-memory view of the persisted cache, enriched by every
	// pass and by minted progress ids.
	ids       map[string]string
	questions []normalize.Question
}

// New builds an Engine and loads the persisted id cache. A cache that
// cannot be read starts empty; that only costs re-discovery, never
// correctness.
func New(ctx context.Context, backend Backend, store idcache.Store, logger *slog.Logger) (*Engine, error) {
	logger = logging.NewComponentLogger(logger, "reconcile")

	ids, err := store.Load(ctx)
	if err != nil {
		logger.Warn("failed to load id cache, starting empty", logging.Error(err))
		ids = make(map[string]string)
	}
	if ids == nil {
		ids = make(map[string]string)
	}

	return &Engine{
		backend: backend,
		store:   store,
		logger:  logger,
		ids:     ids,
	}, nil
}

// workingState is the typed intermediate of one reconciliation pass: what
// the pass has positively learned so far, before it touches the cache.
type workingState struct {
	statusByQuestion map[string]progress.Status
	idByQuestion     map[string]string
}

// Reconcile runs one full pass and returns the merged question list.
// Catalog failure is fatal and surfaces verbatim; every other data source
// degrades to an empty contribution.
func (e *Engine) Reconcile(ctx context.Context) ([]normalize.Question, error) {
	catalog, err := e.backend.FetchQuestions(ctx)
	if err != nil {
		return nil, err
	}

	working := workingState{
		statusByQuestion: make(map[string]progress.Status),
		idByQuestion:     make(map[string]string),
	}

	records, err := e.backend.FetchAllProgress(ctx)
	if err != nil {
		e.logger.Warn("bulk progress fetch failed, falling back to per-id lookups",
			logging.Error(err))
	}
	for _, record := range records {
		working.statusByQuestion[record.QuestionID] = record.Status
		if record.ProgressID != "" {
			working.idByQuestion[record.QuestionID] = record.ProgressID
		}
	}

	e.backfill(ctx, &working)

	// Cache writes happen strictly after the backfill join point.
	if len(working.idByQuestion) > 0 {
		for questionID, progressID := range working.idByQuestion {
			e.ids[questionID] = progressID
		}
		if err := e.store.Merge(ctx, working.idByQuestion); err != nil {
			e.logger.Warn("failed to persist id cache", logging.Error(err))
		}
	}

	merged := make([]normalize.Question, len(catalog))
	for i, question := range catalog {
		if status, ok := working.statusByQuestion[question.ID]; ok {
			question.Status = status
		}
		merged[i] = question
	}
	e.questions = merged
	return merged, nil
}

// backfill issues a per-id lookup for every question id in the union of
// the persisted cache and the fresh bulk results that has no status yet.
// This deliberately includes cached entries absent from the current
// catalog: the pass also heals stale cache rows. Lookups are independent
// reads and run concurrently; a failed or not-found lookup contributes
// nothing.
func (e *Engine) backfill(ctx context.Context, working *workingState) {
	type lookup struct {
		questionID string
		progressID string
	}

	union := make(map[string]string, len(e.ids)+len(working.idByQuestion))
	for questionID, progressID := range e.ids {
		union[questionID] = progressID
	}
	for questionID, progressID := range working.idByQuestion {
		union[questionID] = progressID
	}

	lookups := make([]lookup, 0, len(union))
	for questionID, progressID := range union {
		if _, known := working.statusByQuestion[questionID]; known {
			continue
		}
		lookups = append(lookups, lookup{questionID: questionID, progressID: progressID})
	}
	if len(lookups) == 0 {
		return
	}

	// One result slot per lookup; no state is shared while requests are in
	// flight.
	results := make([]*normalize.ProgressRecord, len(lookups))
	var wg sync.WaitGroup
	for i, target := range lookups {
		wg.Add(1)
		go func(slot int, target lookup) {
			defer wg.Done()
			record, err := e.backend.FetchProgressByID(ctx, target.progressID)
			if err != nil {
				e.logger.Debug("per-id progress lookup failed",
					logging.String("question_id", target.questionID),
					logging.String("progress_id", target.progressID),
					logging.Error(err))
				return
			}
			results[slot] = record
		}(i, target)
	}
	wg.Wait()

	for i, record := range results {
		if record == nil {
			continue
		}
		questionID := record.QuestionID
		if questionID == "" {
			questionID = lookups[i].questionID
		}
		working.statusByQuestion[questionID] = record.Status
		if record.ProgressID != "" {
			working.idByQuestion[questionID] = record.ProgressID
		}
	}
}

// Questions returns the question list from the most recent pass, including
// optimistic status updates applied since.
func (e *Engine) Questions() []normalize.Question {
	out := make([]normalize.Question, len(e.questions))
	copy(out, e.questions)
	return out
}

// ProgressID returns the cached progress identifier for a question, or "".
func (e *Engine) ProgressID(questionID string) string {
	return e.ids[questionID]
}

// BeginAttempt records the first transition for a question. When a
// progress id is already cached the backend call is skipped and the status
// just flips. The returned id is "" when the backend accepted the write
// but returned nothing resolvable; callers surface that as a warning,
// since further transitions will not work until a later pass recovers the
// id.
func (e *Engine) BeginAttempt(ctx context.Context, questionID string) (string, error) {
	if progressID := e.ids[questionID]; progressID != "" {
		e.setStatus(questionID, progress.StatusAttempted)
		return progressID, nil
	}

	progressID, err := e.backend.CreateProgress(ctx, questionID, progress.StatusAttempted)
	if err != nil {
		return "", err
	}
	if progressID != "" {
		e.ids[questionID] = progressID
		if err := e.store.Merge(ctx, map[string]string{questionID: progressID}); err != nil {
			e.logger.Warn("failed to persist minted progress id", logging.Error(err))
		}
	}

	e.setStatus(questionID, progress.StatusAttempted)
	return progressID, nil
}

// MarkSolved moves a question's progress row to solved.
func (e *Engine) MarkSolved(ctx context.Context, questionID string) error {
	return e.transition(ctx, questionID, progress.StatusSolved)
}

// MarkAttempted moves a solved question back to attempted.
func (e *Engine) MarkAttempted(ctx context.Context, questionID string) error {
	return e.transition(ctx, questionID, progress.StatusAttempted)
}

func (e *Engine) transition(ctx context.Context, questionID string, target progress.Status) error {
	progressID := strings.TrimSpace(e.ids[questionID])
	if progressID == "" {
		return ErrProgressIDRequired
	}

	current := e.statusOf(questionID)
	if !progress.CanTransition(current, target) {
		return fmt.Errorf("cannot move question from %s to %s", current, target)
	}

	if err := e.backend.UpdateProgress(ctx, progressID, questionID, target); err != nil {
		return err
	}

	e.setStatus(questionID, target)
	return nil
}

func (e *Engine) statusOf(questionID string) progress.Status {
	for _, question := range e.questions {
		if question.ID == questionID {
			return question.Status
		}
	}
	return progress.StatusPending
}

// setStatus applies an optimistic in-memory update ahead of the next full
// pass.
func (e *Engine) setStatus(questionID string, status progress.Status) {
	for i := range e.questions {
		if e.questions[i].ID == questionID {
			e.questions[i].Status = status
		}
	}
}
