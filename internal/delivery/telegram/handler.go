package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of the Bot API the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot             *tgbotapi.BotAPI
	sender          Sender
	logger          *zap.Logger
	quizService     QuizService
	settingsService SettingsService
	analytics       Analytics
	stories         StoryRenderer
	shareURL        string
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	settingsService SettingsService,
	analytics Analytics,
	stories StoryRenderer,
	shareURL string,
) *Handler {
	return &Handler{
		bot:             bot,
		sender:          bot,
		logger:          logger,
		quizService:     quizService,
		settingsService: settingsService,
		analytics:       analytics,
		stories:         stories,
		shareURL:        shareURL,
	}
}

// Commands returns the bot command menu.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Open the intro screen"},
		{Command: "quiz", Description: "Start a new quiz"},
		{Command: "restart", Description: "Drop the current quiz"},
		{Command: "theme", Description: "Toggle dark mode"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling(userID, h.introHandler(userID, 0))(ctx, chatID)
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(userID, h.introHandler(userID, 0))(ctx, chatID)

	case "quiz":
		_ = h.withErrorHandling(userID, h.startQuizHandler(userID, 0))(ctx, chatID)

	case "restart":
		_ = h.withErrorHandling(userID, h.restartHandler(userID, 0))(ctx, chatID)

	case "theme":
		_ = h.withErrorHandling(userID, h.themeHandler(userID, 0))(ctx, chatID)

	case "help":
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

// track forwards an event to analytics when it is configured.
func (h *Handler) track(userID int64, name string, props map[string]any) {
	if h.analytics == nil {
		return
	}
	h.analytics.Track(userID, name, props)
}

// darkMode returns the user's theme. Lookup failures fall back to light.
func (h *Handler) darkMode(ctx context.Context, userID int64) bool {
	dark, err := h.settingsService.DarkMode(ctx, userID)
	if err != nil {
		h.logger.Warn("failed to load theme, using light",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false
	}
	return dark
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.sender.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading state of a button, optionally with a toast.
func (h *Handler) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.sender.Request(answer); err != nil {
		h.logger.Error("failed to answer callback",
			zap.Error(err),
		)
	}
}
