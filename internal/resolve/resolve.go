package resolve

import (
	"encoding/json"
	"strconv"
	"strings"
)

// subAliases is the generic field list consulted when an alias points at a
// nested object rather than a scalar. Resolution descends exactly one
// level. Container fields with a known meaning ("question", "data",
// "progress") are probed through Nested with a caller-supplied list
// instead, since the generic order would misread a container holding both
// a question id and a progress id.
var subAliases = []string{"id", "_id", "value", "questionId", "progressId"}

// FirstString returns the first value that is a non-empty string after
// trimming, or "".
func FirstString(values ...any) string {
	for _, value := range values {
		if s, ok := value.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// IDLike coerces a single value into an identifier string. Strings are
// trimmed, numbers take their decimal form, and objects are probed one
// level deep via the fixed sub-alias list. Anything else resolves to "".
func IDLike(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case map[string]any:
		candidates := make([]any, 0, len(subAliases))
		for _, alias := range subAliases {
			candidates = append(candidates, v[alias])
		}
		return FirstString(candidates...)
	default:
		return ""
	}
}

// ID walks the alias list in order and returns the first identifier that
// resolves via IDLike. Callers must treat "" as unresolved.
func ID(record map[string]any, aliases []string) string {
	if record == nil {
		return ""
	}
	for _, alias := range aliases {
		if id := IDLike(record[alias]); id != "" {
			return id
		}
	}
	return ""
}

// Nested probes the object stored under key with an explicit sub-alias
// list. A key holding anything but an object resolves to "".
func Nested(record map[string]any, key string, aliases ...string) string {
	if record == nil {
		return ""
	}
	nested, ok := record[key].(map[string]any)
	if !ok {
		return ""
	}
	for _, alias := range aliases {
		if id := IDLike(nested[alias]); id != "" {
			return id
		}
	}
	return ""
}
