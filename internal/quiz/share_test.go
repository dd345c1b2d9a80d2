package quiz

import "testing"

func TestShareText(t *testing.T) {
	want := `I scored 12/15 (80%) on the "Unlearning HTML Myths" quiz at MDN x MozFest! 🧩 Can you beat my score?`
	if got := ShareText(12, 15); got != want {
		t.Errorf("ShareText() =\n%q\nwant\n%q", got, want)
	}
}

func TestShareMessage(t *testing.T) {
	got := ShareMessage(15, 15, "https://example.org/quiz")
	want := ShareText(15, 15) + "\n\nhttps://example.org/quiz"
	if got != want {
		t.Errorf("ShareMessage() = %q, want %q", got, want)
	}

	if got := ShareMessage(0, 15, ""); got != ShareText(0, 15) {
		t.Errorf("expected share text without URL, got %q", got)
	}
}
