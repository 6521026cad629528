package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"questlog/internal/logging"
	"questlog/internal/normalize"
	"questlog/internal/progress"
)

const defaultRequestTimeout = 30 * time.Second

// Doer abstracts http.Client.Do for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoints holds the path templates for every backend operation. Templates
// for single-entity operations carry an ":id" or "{id}" placeholder.
type Endpoints struct {
	Questions      string
	QuestionCreate string
	QuestionUpdate string
	QuestionDelete string
	ProgressList   string
	ProgressGet    string
	ProgressCreate string
	ProgressUpdate string
}

// DefaultEndpoints returns the paths the reference deployment serves.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Questions:      "/questions/",
		QuestionCreate: "/questions",
		QuestionUpdate: "/questions/:id",
		QuestionDelete: "/questions/:id",
		ProgressList:   "/progress/",
		ProgressGet:    "/progress/:id",
		ProgressCreate: "/progress/",
		ProgressUpdate: "/progress/:id",
	}
}

// Options describes client construction parameters.
type Options struct {
	BaseURL    string
	Token      string
	Endpoints  Endpoints
	HTTPClient Doer
	Timeout    time.Duration
	Logger     *slog.Logger
}

// Client talks to the practice-question backend with a bearer credential.
type Client struct {
	baseURL   string
	token     string
	endpoints Endpoints
	http      Doer
	logger    *slog.Logger
}

// New creates a Client from the supplied options.
func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend: base url is required")
	}

	endpoints := opts.Endpoints
	defaults := DefaultEndpoints()
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&endpoints.Questions, defaults.Questions)
	fill(&endpoints.QuestionCreate, defaults.QuestionCreate)
	fill(&endpoints.QuestionUpdate, defaults.QuestionUpdate)
	fill(&endpoints.QuestionDelete, defaults.QuestionDelete)
	fill(&endpoints.ProgressList, defaults.ProgressList)
	fill(&endpoints.ProgressGet, defaults.ProgressGet)
	fill(&endpoints.ProgressCreate, defaults.ProgressCreate)
	fill(&endpoints.ProgressUpdate, defaults.ProgressUpdate)

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:   baseURL,
		token:     strings.TrimSpace(opts.Token),
		endpoints: endpoints,
		http:      client,
		logger:    logging.NewComponentLogger(opts.Logger, "backend"),
	}, nil
}

// FetchQuestions retrieves and normalizes the question catalog.
func (c *Client) FetchQuestions(ctx context.Context) ([]normalize.Question, error) {
	requestURL := joinURL(c.baseURL, c.endpoints.Questions)
	body, err := c.get(ctx, requestURL, false)
	if err != nil {
		return nil, err
	}
	return normalize.Questions(body), nil
}

// FetchAllProgress retrieves the user's full progress list. A 2xx response
// with an unparseable body yields no records.
func (c *Client) FetchAllProgress(ctx context.Context) ([]normalize.ProgressRecord, error) {
	requestURL := joinURL(c.baseURL, c.endpoints.ProgressList)
	body, err := c.get(ctx, requestURL, true)
	if err != nil {
		return nil, err
	}
	return normalize.ProgressRecords(body), nil
}

// FetchProgressByID looks up a single progress row. A 404 resolves to
// (nil, nil): the id is simply unknown to the backend. A response whose
// question id cannot be resolved also yields nil.
func (c *Client) FetchProgressByID(ctx context.Context, progressID string) (*normalize.ProgressRecord, error) {
	requestURL := expandIDTemplate(c.baseURL, c.endpoints.ProgressGet, progressID)

	resp, raw, err := c.do(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	body := parseBody(raw)
	if !is2xx(resp.StatusCode) {
		statusErr := c.statusError(http.MethodGet, requestURL, resp.StatusCode, body, raw, false)
		if IsNotFound(statusErr) {
			return nil, nil
		}
		return nil, statusErr
	}

	items := normalize.ProgressItems(body)
	if len(items) == 0 {
		return nil, nil
	}
	first := items[0]
	questionID := normalize.QuestionIDOf(first)
	if questionID == "" {
		return nil, nil
	}

	resolvedID := normalize.ProgressIDOf(first)
	if resolvedID == "" {
		resolvedID = progressID
	}
	return &normalize.ProgressRecord{
		ProgressID: resolvedID,
		QuestionID: questionID,
		Status:     progress.Parse(first["status"]),
	}, nil
}

// CreateProgress records the first transition for a question and returns
// the progress id the backend minted. An empty return with a nil error
// means the backend accepted the write but its response carried no
// resolvable id; callers surface that as a warning, not a failure.
func (c *Client) CreateProgress(ctx context.Context, questionID string, status progress.Status) (string, error) {
	requestURL := joinURL(c.baseURL, c.endpoints.ProgressCreate)
	payload := map[string]string{"questionId": questionID, "status": string(status)}

	resp, raw, err := c.do(ctx, http.MethodPost, requestURL, payload)
	if err != nil {
		return "", err
	}
	body := parseBody(raw)
	if !is2xx(resp.StatusCode) {
		return "", c.statusError(http.MethodPost, requestURL, resp.StatusCode, body, raw, true)
	}

	record, _ := body.(map[string]any)
	return normalize.ProgressIDOf(record), nil
}

// UpdateProgress moves an existing progress row to the given status.
func (c *Client) UpdateProgress(ctx context.Context, progressID, questionID string, status progress.Status) error {
	requestURL := expandIDTemplate(c.baseURL, c.endpoints.ProgressUpdate, progressID)
	payload := map[string]string{"questionId": questionID, "status": string(status)}

	resp, raw, err := c.do(ctx, http.MethodPut, requestURL, payload)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return c.statusError(http.MethodPut, requestURL, resp.StatusCode, parseBody(raw), raw, true)
	}
	return nil
}

// QuestionDraft carries the admin-facing fields for creating or updating a
// catalog entry.
type QuestionDraft struct {
	Title             string
	Description       string
	Category          string
	Difficulty        string
	SampleInputOutput string
	Constraints       string
	Link              string
}

// CreateQuestion adds a catalog entry. The payload duplicates several
// fields under legacy aliases; deployed backend versions disagree on which
// names they read.
func (c *Client) CreateQuestion(ctx context.Context, draft QuestionDraft) error {
	requestURL := joinURL(c.baseURL, c.endpoints.QuestionCreate)
	difficulty := strings.ToLower(strings.TrimSpace(draft.Difficulty))
	category := strings.ToLower(strings.TrimSpace(draft.Category))

	payload := map[string]string{
		"title":             draft.Title,
		"description":       draft.Description,
		"category":          category,
		"difficulty":        difficulty,
		"level":             difficulty,
		"sampleInputOutput": draft.SampleInputOutput,
		"sampleInput":       draft.SampleInputOutput,
		"sample_input":      draft.SampleInputOutput,
		"constraints":       draft.Constraints,
		"leetcodeUrl":       draft.Link,
		"link":              draft.Link,
	}

	resp, raw, err := c.do(ctx, http.MethodPost, requestURL, payload)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return c.statusError(http.MethodPost, requestURL, resp.StatusCode, parseBody(raw), raw, true)
	}
	return nil
}

// UpdateQuestion replaces a catalog entry's fields.
func (c *Client) UpdateQuestion(ctx context.Context, questionID string, draft QuestionDraft) error {
	requestURL := expandIDTemplate(c.baseURL, c.endpoints.QuestionUpdate, questionID)

	payload := map[string]string{
		"title":             draft.Title,
		"description":       draft.Description,
		"category":          strings.ToLower(strings.TrimSpace(draft.Category)),
		"difficulty":        strings.ToLower(strings.TrimSpace(draft.Difficulty)),
		"sampleInputOutput": draft.SampleInputOutput,
		"constraints":       draft.Constraints,
		"leetcodeUrl":       draft.Link,
	}

	resp, raw, err := c.do(ctx, http.MethodPut, requestURL, payload)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return c.statusError(http.MethodPut, requestURL, resp.StatusCode, parseBody(raw), raw, true)
	}
	return nil
}

// DeleteQuestion removes a catalog entry.
func (c *Client) DeleteQuestion(ctx context.Context, questionID string) error {
	requestURL := expandIDTemplate(c.baseURL, c.endpoints.QuestionDelete, questionID)

	resp, raw, err := c.do(ctx, http.MethodDelete, requestURL, nil)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return c.statusError(http.MethodDelete, requestURL, resp.StatusCode, parseBody(raw), raw, true)
	}
	return nil
}

// get performs a GET and returns the loosely parsed body, mapping non-2xx
// statuses to a StatusError.
func (c *Client) get(ctx context.Context, requestURL string, verbose bool) (any, error) {
	resp, raw, err := c.do(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	body := parseBody(raw)
	if !is2xx(resp.StatusCode) {
		return nil, c.statusError(http.MethodGet, requestURL, resp.StatusCode, body, raw, verbose)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, requestURL string, payload any) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", method, requestURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("backend exchange",
		logging.String("method", method),
		logging.String("url", requestURL),
		logging.Int("status", resp.StatusCode))

	return resp, raw, nil
}

// statusError builds the error for a non-2xx response: the body's message
// field when present, else the raw body text, else "HTTP <status>". Verbose
// errors append the verb and URL.
func (c *Client) statusError(method, requestURL string, code int, body any, raw []byte, verbose bool) error {
	message := ""
	if record, ok := body.(map[string]any); ok {
		if m, ok := record["message"].(string); ok {
			message = strings.TrimSpace(m)
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", code)
	}
	if verbose {
		message = fmt.Sprintf("%s (%s %s)", message, method, requestURL)
	}
	return &StatusError{Code: code, Method: method, URL: requestURL, Message: message}
}

// parseBody decodes loose JSON; unparseable bodies resolve to nil.
func parseBody(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

func is2xx(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
