package normalize

import "questlog/internal/progress"

// Question is a catalog entry in canonical form. Instances are rebuilt from
// every fetch; only Status is ever updated in place, and only by the
// reconciliation engine after a successful mutating call.
type Question struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Difficulty  string          `json:"difficulty"`
	SampleInput string          `json:"sampleInput,omitempty"`
	Constraints string          `json:"constraints,omitempty"`
	Link        string          `json:"link,omitempty"`
	Status      progress.Status `json:"status"`
}

// ProgressRecord is the backend's report of a user's progress on one
// question. ProgressID is the backend's own row identifier, distinct from
// the question id, and is only meaningful as an argument to later mutation
// calls.
type ProgressRecord struct {
	ProgressID string          `json:"progressId"`
	QuestionID string          `json:"questionId"`
	Status     progress.Status `json:"status"`
}
