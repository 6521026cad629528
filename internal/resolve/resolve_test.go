package resolve

import "testing"

func TestFirstString(t *testing.T) {
	if got := FirstString(nil, "", "  ", " q1 ", "q2"); got != "q1" {
		t.Errorf("FirstString = %q, want %q", got, "q1")
	}
	if got := FirstString(42, true, nil); got != "" {
		t.Errorf("FirstString over non-strings = %q, want empty", got)
	}
}

func TestIDLike(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"trimmed string", "  abc ", "abc"},
		{"whitespace only", "   ", ""},
		{"integer-valued float", float64(42), "42"},
		{"fractional float", 4.5, "4.5"},
		{"int", 7, "7"},
		{"nil", nil, ""},
		{"bool", true, ""},
		{"array", []any{"x"}, ""},
		{"nested id", map[string]any{"id": "n1"}, "n1"},
		{"nested underscore id", map[string]any{"_id": "n2"}, "n2"},
		{"nested value", map[string]any{"value": "n3"}, "n3"},
		{"nested precedence", map[string]any{"progressId": "p", "id": "n4"}, "n4"},
		{"nested unresolved", map[string]any{"name": "x"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IDLike(tc.input); got != tc.want {
				t.Errorf("IDLike(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIDAliasOrder(t *testing.T) {
	record := map[string]any{
		"questionId": "  ",
		"_id":        "fallback",
		"id":         "primary",
	}
	if got := ID(record, []string{"questionId", "id", "_id"}); got != "primary" {
		t.Errorf("ID = %q, want %q", got, "primary")
	}
}

func TestIDNestedDescent(t *testing.T) {
	record := map[string]any{
		"question": map[string]any{"_id": "q77"},
	}
	if got := ID(record, []string{"questionId", "question"}); got != "q77" {
		t.Errorf("ID = %q, want %q", got, "q77")
	}
}

func TestNestedUsesOnlyGivenAliases(t *testing.T) {
	record := map[string]any{
		"data": map[string]any{"questionId": "q1", "progressId": "p1"},
	}
	if got := Nested(record, "data", "id", "_id", "progressId"); got != "p1" {
		t.Errorf("Nested = %q, want %q", got, "p1")
	}
	if got := Nested(record, "data", "id", "_id"); got != "" {
		t.Errorf("Nested without a matching alias = %q, want empty", got)
	}
}

func TestNestedNonObject(t *testing.T) {
	record := map[string]any{"data": "scalar"}
	if got := Nested(record, "data", "id"); got != "" {
		t.Errorf("Nested on scalar container = %q, want empty", got)
	}
	if got := Nested(nil, "data", "id"); got != "" {
		t.Errorf("Nested on nil record = %q, want empty", got)
	}
}

func TestIDUnresolved(t *testing.T) {
	if got := ID(map[string]any{"title": "two sum"}, []string{"id", "_id"}); got != "" {
		t.Errorf("ID = %q, want empty", got)
	}
	if got := ID(nil, []string{"id"}); got != "" {
		t.Errorf("ID on nil record = %q, want empty", got)
	}
}
