package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func catalogFixture() []map[string]any {
	return []map[string]any{
		{
			"_id":         "q1",
			"title":       "Two Sum",
			"category":    "dsa",
			"difficulty":  "easy",
			"leetcodeUrl": "leetcode.com/problems/two-sum",
		},
		{
			"_id":        "q2",
			"title":      "Top Earners",
			"category":   "sql",
			"difficulty": "medium",
		},
	}
}

func TestCLIListAttemptSolveFlow(t *testing.T) {
	env := setupCLITestEnv(t, catalogFixture())

	out, _, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Two Sum")
	requireContains(t, out, "Top Earners")
	requireContains(t, out, "2 questions, 0 solved")

	out, _, err = runCLI(t, []string{"attempt", "q1"}, env.configPath)
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	requireContains(t, out, "Question q1 marked attempted")

	out, _, err = runCLI(t, []string{"solve", "q1"}, env.configPath)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	requireContains(t, out, "Question q1 marked solved")

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list after solve: %v", err)
	}
	requireContains(t, out, "2 questions, 1 solved")

	out, _, err = runCLI(t, []string{"unsolve", "q1"}, env.configPath)
	if err != nil {
		t.Fatalf("unsolve: %v", err)
	}
	requireContains(t, out, "Question q1 moved back to attempted")
}

func TestCLISolveWithoutAttemptFails(t *testing.T) {
	env := setupCLITestEnv(t, catalogFixture())

	_, _, err := runCLI(t, []string{"solve", "q2"}, env.configPath)
	if err == nil {
		t.Fatal("expected solve without a recorded attempt to fail")
	}
	requireContains(t, err.Error(), "begin an attempt first")
}

func TestCLIListJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t, catalogFixture())

	out, _, err := runCLI(t, []string{"list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode list output: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d questions in JSON output", len(decoded))
	}
}

func TestCLIListStatusFilter(t *testing.T) {
	env := setupCLITestEnv(t, catalogFixture())

	if _, _, err := runCLI(t, []string{"attempt", "q1"}, env.configPath); err != nil {
		t.Fatalf("attempt: %v", err)
	}

	out, _, err := runCLI(t, []string{"list", "--status", "attempted"}, env.configPath)
	if err != nil {
		t.Fatalf("list --status: %v", err)
	}
	requireContains(t, out, "Two Sum")
	if strings.Contains(out, "Top Earners") {
		t.Fatalf("filtered list should not contain pending questions: %q", out)
	}
}

func TestCLICacheShowAfterAttempt(t *testing.T) {
	env := setupCLITestEnv(t, catalogFixture())

	out, _, err := runCLI(t, []string{"cache", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache show: %v", err)
	}
	requireContains(t, out, "Cache is empty")

	if _, _, err := runCLI(t, []string{"attempt", "q1"}, env.configPath); err != nil {
		t.Fatalf("attempt: %v", err)
	}

	out, _, err = runCLI(t, []string{"cache", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("cache show after attempt: %v", err)
	}
	requireContains(t, out, "q1")
	requireContains(t, out, "p1")
}
