package quizbank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trevsky25/easypayuniversity-sub001/internal/model"
)

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

func TestLoadBank(t *testing.T) {
	path := writeBank(t, `
title = "Refunds Refresher"

[quiz]
passing-score = 70

[[question]]
type = "single-choice"
prompt = "How fast must refunds post?"
options = ["Same day", "Within the network window", "Whenever"]
correct = 1
explanation = "Networks define the refund window."

[[question]]
type = "multi-select"
prompt = "Pick valid refund channels."
options = ["Original card", "Cash", "Store credit", "A different card"]
correct-options = [0, 2]

[[question]]
type = "free-text"
prompt = "Describe your store's refund policy."
points = 5
`)
	defaults := model.QuizConfig{TimeLimitMinutes: 10, PassingScore: 80}
	bank, err := Load(path, defaults)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Title != "Refunds Refresher" {
		t.Fatalf("unexpected title %q", bank.Title)
	}
	if bank.Quiz.PassingScore != 70 || bank.Quiz.TimeLimitMinutes != 10 {
		t.Fatalf("quiz overrides not applied: %+v", bank.Quiz)
	}
	if len(bank.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(bank.Questions))
	}
	if bank.Questions[0].Type != model.SingleChoice || bank.Questions[0].CorrectOption != 1 {
		t.Fatalf("first question mis-parsed: %+v", bank.Questions[0])
	}
	if got := bank.Questions[1].CorrectOptions; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("multi-select answers mis-parsed: %v", got)
	}
	if bank.Questions[2].Points != 5 {
		t.Fatalf("points override not applied: %d", bank.Questions[2].Points)
	}
	if bank.Questions[0].Points != 10 {
		t.Fatalf("default points not applied: %d", bank.Questions[0].Points)
	}
}

func TestLoadRejectsBadBanks(t *testing.T) {
	defaults := model.QuizConfig{TimeLimitMinutes: 10, PassingScore: 80}
	cases := []struct {
		name    string
		content string
	}{
		{"missing file is an error", ""},
		{"no questions", `title = "empty"`},
		{"unknown type", `
[[question]]
type = "essay"
prompt = "?"
`},
		{"correct out of range", `
[[question]]
type = "single-choice"
prompt = "?"
options = ["a", "b"]
correct = 5
`},
		{"scenario without text", `
[[question]]
type = "scenario-single-choice"
prompt = "?"
options = ["a", "b"]
correct = 0
`},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "bank.toml")
		if tc.content != "" {
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("%s: write: %v", tc.name, err)
			}
		}
		if _, err := Load(path, defaults); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
