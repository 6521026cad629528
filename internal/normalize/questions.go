package normalize

import (
	"fmt"
	"regexp"
	"strconv"

	"questlog/internal/progress"
	"questlog/internal/resolve"
)

var questionIDAliases = []string{"id", "_id", "questionId"}

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// Questions extracts the catalog list from a response body of unknown
// shape: a bare list, an object with a "data" list, or an object with a
// "questions" list, in that priority order. Unclassifiable bodies yield an
// empty slice.
func Questions(body any) []Question {
	var list []any
	switch v := body.(type) {
	case []any:
		list = v
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			list = data
		} else if questions, ok := v["questions"].([]any); ok {
			list = questions
		}
	}

	result := make([]Question, 0, len(list))
	for _, item := range list {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result = append(result, projectQuestion(record))
	}
	return result
}

func projectQuestion(raw map[string]any) Question {
	link := resolve.FirstString(
		raw["leetcodeUrl"],
		raw["leetcode_url"],
		raw["leetcodeLink"],
		raw["leetCodeLink"],
		raw["link"],
		raw["problemLink"],
		raw["problemUrl"],
		raw["questionUrl"],
		raw["url"],
	)
	if link != "" && !schemePattern.MatchString(link) {
		link = "https://" + link
	}

	status := raw["status"]
	if status == nil {
		status = raw["userStatus"]
	}

	return Question{
		ID:          resolve.ID(raw, questionIDAliases),
		Title:       text(raw["title"]),
		Description: text(raw["description"]),
		Category:    text(raw["category"]),
		Difficulty:  text(raw["difficulty"]),
		SampleInput: firstText(raw["sampleInput"], raw["sample_input"], raw["sampleInputOutput"], raw["sample_input_output"]),
		Constraints: firstText(raw["constraints"], raw["constraint"]),
		Link:        link,
		Status:      progress.Parse(status),
	}
}

// text coerces any JSON value to a string; nil becomes "" rather than a
// literal null marker.
func text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// firstText returns the text form of the first non-nil value.
func firstText(values ...any) string {
	for _, value := range values {
		if value != nil {
			return text(value)
		}
	}
	return ""
}
