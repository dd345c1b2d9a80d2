package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

func themeButtonLabel(dark bool) string {
	if dark {
		return "☀️ Light mode"
	}
	return "🌙 Dark mode"
}

// buildIntroKeyboard builds keyboard for the intro screen.
func buildIntroKeyboard(dark bool) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Start Quiz →", buildQuizStartCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(themeButtonLabel(dark), buildThemeToggleCallback()),
		),
	)
}

// buildAnswerKeyboard builds True/False buttons for an unanswered statement.
func buildAnswerKeyboard(s quiz.Session) tgbotapi.InlineKeyboardMarkup {
	pos := s.Position()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✓ True", buildQuizAnswerCallback(pos, true)),
			tgbotapi.NewInlineKeyboardButtonData("✗ False", buildQuizAnswerCallback(pos, false)),
		),
	)
}

// buildRevealKeyboard builds keyboard for an answered statement.
func buildRevealKeyboard(s quiz.Session) tgbotapi.InlineKeyboardMarkup {
	next := "Next Question →"
	if s.IsLast() {
		next = "See Results →"
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	if st, ok := s.Current(); ok && st.ReferenceLink != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Learn More on MDN", buildMDNLinkCallback(st.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(next, buildQuizNextCallback(s.Position())),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultsKeyboard builds keyboard for the results screen.
func buildResultsKeyboard(dark bool) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Explore MDN Curriculum →", buildLinkCallback(linkCurriculum)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("GitHub", buildLinkCallback(linkGithub)),
			tgbotapi.NewInlineKeyboardButtonData("Discord", buildLinkCallback(linkDiscord)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📸 Instagram Story Image", buildShareCallback(shareStory)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Copy Share Text", buildShareCallback(shareText)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(themeButtonLabel(dark), buildThemeToggleCallback()),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try Again", buildQuizRestartCallback()),
		),
	)
}
