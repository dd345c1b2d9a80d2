package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newHTMLEdit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	return edit
}

// screen builds either a new message or an edit of messageID when it is set.
func screen(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.Chattable {
	if messageID == 0 {
		msg := newHTMLMessage(chatID, text)
		msg.ReplyMarkup = kb
		return msg
	}
	return newHTMLEdit(chatID, messageID, text, &kb)
}
