package telegram

import (
	"strings"
	"testing"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		width int
		want  string
	}{
		{"empty", 0, 15, 5, "▱▱▱▱▱"},
		{"full", 15, 15, 5, "▰▰▰▰▰"},
		{"partial", 6, 15, 5, "▰▰▱▱▱"},
		{"clamped above", 20, 15, 3, "▰▰▰"},
		{"clamped below", -1, 15, 3, "▱▱▱"},
		{"no total", 1, 0, 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progressBar(tt.done, tt.total, tt.width); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResultVerdict(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range []int{100, 80, 50, 0} {
		seen[resultVerdict(p)] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected distinct verdicts per band, got %d", len(seen))
	}
	if resultVerdict(99) != resultVerdict(80) {
		t.Error("99% and 80% should share a verdict")
	}
}

func revealedSession(answer bool) quiz.Session {
	st := entities.Statement{
		ID:          2,
		Text:        "<i> and <em> both just italicize text.",
		IsTrue:      false,
		Explanation: "<em> adds stress emphasis & meaning.",
	}
	return quiz.Session{
		Stage:    quiz.InProgress,
		Order:    []entities.Statement{st, {ID: 3}},
		Answers:  []bool{answer},
		Revealed: true,
	}
}

func TestFormatRevealed(t *testing.T) {
	text := formatRevealed(revealedSession(false))

	for _, want := range []string{
		"Question 1 of 2 (1st)",
		"Myth #2",
		"&lt;i&gt; and &lt;em&gt; both just italicize text.",
		"✅ <b>Correct!</b>",
		"The answer is <b>False</b> (Myth).",
		"&lt;em&gt; adds stress emphasis &amp; meaning.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}

	if wrong := formatRevealed(revealedSession(true)); !strings.Contains(wrong, "Not quite") {
		t.Errorf("expected incorrect verdict in:\n%s", wrong)
	}
}

func TestFormatStatementBeforeAnswer(t *testing.T) {
	s := revealedSession(true)
	s.Answers = nil
	s.Revealed = false

	text := formatStatement(s)
	if strings.Contains(text, "Explanation") {
		t.Error("explanation must stay hidden before answering")
	}
	if !strings.Contains(text, "Score: 0/0") {
		t.Errorf("unexpected header in:\n%s", text)
	}
}

func TestFormatResults(t *testing.T) {
	order := make([]entities.Statement, 15)
	answers := make([]bool, 15)
	for i := range order {
		order[i] = entities.Statement{ID: i + 1, IsTrue: i < 12}
		answers[i] = true
	}
	s := quiz.Session{Stage: quiz.Finished, Order: order, Answers: answers, CurrentIndex: 14}

	text := formatResults(s, false)
	if !strings.Contains(text, "<b>12/15</b> · 80% Correct") {
		t.Errorf("unexpected score line in:\n%s", text)
	}
	if !strings.Contains(text, themeLabel(false)) {
		t.Errorf("expected theme label in:\n%s", text)
	}
}

func TestFormatShareMessageEscapes(t *testing.T) {
	got := formatShareMessage("Unlearning <html> myths & more")
	want := "<code>Unlearning &lt;html&gt; myths &amp; more</code>"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
