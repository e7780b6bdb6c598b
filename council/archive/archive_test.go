package archive

import (
	"testing"

	contractx "github.com/frankwear858/ai-council/council/contract"
)

func TestNewRoundMapsResult(t *testing.T) {
	t.Parallel()

	result := contractx.RoundResult{
		Answers: []contractx.Answer{
			{Persona: "Analyst", Text: "a"},
			{Persona: "Optimist", Text: "b"},
		},
		WinnerName:   "Optimist",
		WinnerAnswer: "b",
	}

	row := newRound("the question", result)
	if row.Question != "the question" {
		t.Fatalf("Question = %q", row.Question)
	}
	if row.Winner != "Optimist" || row.WinnerAnswer != "b" {
		t.Fatalf("winner mapping = %q/%q", row.Winner, row.WinnerAnswer)
	}
	if row.AnswerCount != 2 {
		t.Fatalf("AnswerCount = %d, want 2", row.AnswerCount)
	}
	if row.Answers["Analyst"] != "a" || row.Answers["Optimist"] != "b" {
		t.Fatalf("Answers = %#v", row.Answers)
	}
}

func TestNewRequiresDSN(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{DSN: "   "}); err == nil {
		t.Fatal("New() error = nil, want error for empty dsn")
	}
}
