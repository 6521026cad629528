package normalize

import (
	"questlog/internal/progress"
	"questlog/internal/resolve"
)

var (
	progressQuestionAliases = []string{"questionId", "question_id", "problemId", "problem_id"}
	progressIDAliases       = []string{"id", "_id", "progressId", "progress_id"}
	nestedQuestionAliases   = []string{"id", "_id", "questionId"}
	nestedProgressAliases   = []string{"id", "_id", "progressId"}
)

// ProgressItems unwraps a progress response body into its raw records. The
// known envelope shapes are tried in priority order, most structured first:
//
//  1. bare list
//  2. {"data": [...]}
//  3. {"progress": [...]}
//  4. {"data": {"progress"|"items"|"docs": [...]}}
//  5. {"data": {...}} single record
//  6. {"progress": {...}} single record
//  7. bare single record, recognized by a "status" field
//
// Non-object list elements are discarded. Anything else yields nil.
func ProgressItems(body any) []map[string]any {
	switch v := body.(type) {
	case []any:
		return filterRecords(v)
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return filterRecords(data)
		}
		if list, ok := v["progress"].([]any); ok {
			return filterRecords(list)
		}
		if data, ok := v["data"].(map[string]any); ok {
			for _, key := range []string{"progress", "items", "docs"} {
				if nested, ok := data[key].([]any); ok {
					return filterRecords(nested)
				}
			}
			return []map[string]any{data}
		}
		if record, ok := v["progress"].(map[string]any); ok {
			return []map[string]any{record}
		}
		if _, ok := v["status"]; ok {
			return []map[string]any{v}
		}
	}
	return nil
}

// ProgressRecords normalizes a progress response body into canonical
// records. Records whose question id cannot be resolved are dropped; a
// missing progress id is preserved as empty so callers can decide how to
// degrade.
func ProgressRecords(body any) []ProgressRecord {
	items := ProgressItems(body)
	records := make([]ProgressRecord, 0, len(items))
	for _, item := range items {
		questionID := QuestionIDOf(item)
		if questionID == "" {
			continue
		}
		records = append(records, ProgressRecord{
			ProgressID: ProgressIDOf(item),
			QuestionID: questionID,
			Status:     progress.Parse(item["status"]),
		})
	}
	return records
}

// QuestionIDOf resolves the question id of a raw progress record: the
// scalar aliases first, then one level into an embedded question object.
func QuestionIDOf(record map[string]any) string {
	if id := resolve.ID(record, progressQuestionAliases); id != "" {
		return id
	}
	return resolve.Nested(record, "question", nestedQuestionAliases...)
}

// ProgressIDOf resolves the backend's progress row id: the scalar aliases
// first, then one level into embedded data/progress objects. The embedded
// probes never read questionId, so a container carrying both ids cannot
// yield the wrong one.
func ProgressIDOf(record map[string]any) string {
	if id := resolve.ID(record, progressIDAliases); id != "" {
		return id
	}
	if id := resolve.Nested(record, "data", nestedProgressAliases...); id != "" {
		return id
	}
	return resolve.Nested(record, "progress", nestedProgressAliases...)
}

func filterRecords(list []any) []map[string]any {
	records := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if record, ok := item.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}
