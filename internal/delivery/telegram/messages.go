// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

// Outbound links.
const (
	curriculumURL = "https://developer.mozilla.org/en-US/curriculum/"
	githubURL     = "https://github.com/mdn"
	discordURL    = "https://mdn.dev/discord"
)

// Error and service messages.
const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgQuizNotFinished = "Finish the quiz first to share your score."
	msgStoryFailed     = "Could not create the story image. Please try again later."
	msgTextCopied      = "✅ Text copied!"
	msgStoryCaption    = "📸 Your story image is ready. Share it on Instagram and challenge your friends!"
	msgUnknownCommand  = "Unknown command. Try /help."
)

const msgHelp = `<b>Unlearning HTML Myths</b>

/start - open the intro screen
/quiz - start a new quiz right away
/restart - drop the current quiz and go back to the intro
/theme - switch between light and dark mode
/help - show this message`

const progressBarWidth = 15

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func themeLabel(dark bool) string {
	if dark {
		return "🌙 Dark"
	}
	return "☀️ Light"
}

// formatIntro renders the intro screen.
func formatIntro(total int, dark bool) string {
	var sb strings.Builder

	sb.WriteString("<b>🧩 Unlearning HTML Myths</b>\n")
	sb.WriteString("<i>MDN × MozFest · 7-9 Nov, 2025 • Barcelona, Spain 🇪🇸</i>\n\n")
	sb.WriteString("<b>How it works:</b>\n")
	fmt.Fprintf(&sb, "1️⃣ You'll see %d statements about HTML (randomly ordered)\n", total)
	sb.WriteString("2️⃣ Guess if each statement is true or false\n")
	sb.WriteString("3️⃣ Learn the truth and discover best practices\n\n")
	fmt.Fprintf(&sb, "Theme: %s", themeLabel(dark))

	return sb.String()
}

// formatProgressHeader renders the "Question N of M" line with the running score.
func formatProgressHeader(s quiz.Session) string {
	return fmt.Sprintf(
		"Question %d of %d (%s) · Score: %d/%d\n%s",
		s.Position(),
		s.Total(),
		humanize.Ordinal(s.Position()),
		s.Score(),
		len(s.Answers),
		progressBar(s.Position(), s.Total(), progressBarWidth),
	)
}

// formatStatement renders the current statement before it is answered.
func formatStatement(s quiz.Session) string {
	st, ok := s.Current()
	if !ok {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n<code>Myth #%d</code>\n<b>%s</b>",
		formatProgressHeader(s),
		st.ID,
		esc(st.Text),
	)
}

// formatRevealed renders the current statement after it is answered.
func formatRevealed(s quiz.Session) string {
	st, ok := s.Current()
	if !ok {
		return ""
	}
	_, correct, answered := s.CurrentAnswer()
	if !answered {
		return formatStatement(s)
	}

	verdict := "❌ <b>Not quite</b>"
	if correct {
		verdict = "✅ <b>Correct!</b>"
	}

	answer := "False"
	if st.IsTrue {
		answer = "True"
	}

	return fmt.Sprintf(
		"%s\n\n<code>Myth #%d</code>\n<b>%s</b>\n\n%s\nThe answer is <b>%s</b> (%s).\n\n<b>Explanation:</b>\n%s",
		formatProgressHeader(s),
		st.ID,
		esc(st.Text),
		verdict,
		answer,
		st.Verdict(),
		esc(st.Explanation),
	)
}

// resultVerdict returns a one-line comment for a final percentage.
func resultVerdict(percentage int) string {
	switch {
	case percentage == 100:
		return "🏆 Flawless! You've unlearned every myth."
	case percentage >= 80:
		return "🌟 Great job! Only a few myths left to unlearn."
	case percentage >= 50:
		return "👍 Not bad! There's more HTML worth revisiting."
	default:
		return "📚 Plenty to unlearn. MDN has your back."
	}
}

// formatResults renders the results screen.
func formatResults(s quiz.Session, dark bool) string {
	score, total := s.Score(), s.Total()
	percentage := quiz.Percentage(score, total)

	var sb strings.Builder

	sb.WriteString("<b>🎉 Quiz Complete!</b>\n\n")
	fmt.Fprintf(&sb, "<b>%d/%d</b> · %d%% Correct\n", score, total, percentage)
	sb.WriteString(progressBar(score, total, progressBarWidth))
	sb.WriteString("\n")
	sb.WriteString(resultVerdict(percentage))
	sb.WriteString("\n\n")
	sb.WriteString("<b>📖 Keep Learning</b>\nDive deeper into web development with the MDN Web Docs Curriculum.\n\n")
	sb.WriteString("<b>🤝 Join the Community</b>\nHelp make the web better by contributing to MDN.\n\n")
	sb.WriteString("<b>Share Your Results</b>\nChallenge your friends to unlearn HTML myths! Copy the text and paste it on your favorite platform.\n\n")
	fmt.Fprintf(&sb, "Theme: %s", themeLabel(dark))

	return sb.String()
}

// formatShareMessage renders the share text as a copyable code block.
func formatShareMessage(text string) string {
	return "<code>" + esc(text) + "</code>"
}

// formatLink renders an outbound link message.
func formatLink(title, url string) string {
	return fmt.Sprintf("%s\n<a href=\"%s\">%s</a>", title, esc(url), esc(url))
}

func formatStatementLink(st entities.Statement) string {
	return formatLink(fmt.Sprintf("📚 Learn more on MDN about myth #%d:", st.ID), st.ReferenceLink)
}

// progressBar draws a fixed-width bar for done out of total.
func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	filled := done * width / total
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}
