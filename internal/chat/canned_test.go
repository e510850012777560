package chat

import (
	"strings"
	"testing"
)

func TestReply_PillQuestionsGetCannedAnswers(t *testing.T) {
	for _, s := range Suggestions() {
		if got := Reply(s.Question); got != s.Answer {
			t.Fatalf("question %q: expected canned answer, got %q", s.Question, got)
		}
	}
}

func TestReply_MatchIsCaseInsensitive(t *testing.T) {
	got := Reply("what industries have the most jobs?")
	if !strings.Contains(got, "top industries") {
		t.Fatalf("expected canned answer, got %q", got)
	}
}

func TestReply_FreeFormEchoes(t *testing.T) {
	got := Reply("How many welders does Ghana need?")
	if !strings.Contains(got, "How many welders does Ghana need?") {
		t.Fatalf("expected echo, got %q", got)
	}
	if !strings.Contains(got, "still learning") {
		t.Fatalf("expected still-learning reply, got %q", got)
	}
}

func TestReply_BlankGetsGreeting(t *testing.T) {
	if got := Reply("   "); got != Greeting {
		t.Fatalf("expected greeting, got %q", got)
	}
}
