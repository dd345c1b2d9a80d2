package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
	"github.com/pransh15/html-myths-quiz/internal/repository"
	"github.com/pransh15/html-myths-quiz/internal/story"
)

const (
	defaultStatsWindow = 24 * time.Hour
	maxShareTotal      = 1000
)

var errInvalidScore = errors.New("score and total must satisfy 0 <= score <= total and 0 < total <= 1000")

type handler struct {
	quiz      QuizService
	stories   StoryRenderer
	analytics Analytics
	shareURL  string
	logger    *zap.Logger
}

func newHandler(c *Container) *handler {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &handler{
		quiz:      c.Quiz,
		stories:   c.Stories,
		analytics: c.Analytics,
		shareURL:  c.ShareURL,
		logger:    logger,
	}
}

type shareResponse struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Text       string `json:"text"`
	Message    string `json:"message"`
}

type statsResponse struct {
	Since          time.Time        `json:"since"`
	Events         map[string]int64 `json:"events"`
	DroppedEvents  int64            `json:"dropped_events"`
	ActiveSessions int              `json:"active_sessions"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listStatements handles GET /v1/statements
func (h *handler) listStatements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]entities.Statement{
		"statements": h.quiz.Statements(),
	})
}

// getStatement handles GET /v1/statements/{id}
func (h *handler) getStatement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid statement id")
		return
	}

	st, err := h.quiz.StatementByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrStatementNotFound) {
			writeError(w, http.StatusNotFound, "statement not found")
			return
		}
		h.logger.Error("failed to get statement", zap.Int("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get statement")
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// share handles GET /v1/share?score=&total=
func (h *handler) getShare(w http.ResponseWriter, r *http.Request) {
	score, total, err := h.scoreParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{
		Score:      score,
		Total:      total,
		Percentage: quiz.Percentage(score, total),
		Text:       quiz.ShareText(score, total),
		Message:    quiz.ShareMessage(score, total, h.shareURL),
	})
}

// story handles GET /v1/story.png?score=&total=&theme=
func (h *handler) getStory(w http.ResponseWriter, r *http.Request) {
	score, total, err := h.scoreParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dark := r.URL.Query().Get("theme") == "dark"

	data, err := h.stories.Render(score, total, dark)
	if err != nil {
		h.logger.Error("failed to render story", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render story")
		return
	}

	if h.analytics != nil {
		h.analytics.Track(0, entities.EventInstagramStoryGenerated, map[string]any{
			"score":      score,
			"percentage": quiz.Percentage(score, total),
			"source":     "api",
		})
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+story.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// stats handles GET /v1/stats?window=24h
func (h *handler) getStats(w http.ResponseWriter, r *http.Request) {
	if h.analytics == nil {
		writeError(w, http.StatusServiceUnavailable, "stats unavailable")
		return
	}

	window := defaultStatsWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, "invalid window")
			return
		}
		window = d
	}

	since := time.Now().UTC().Add(-window)
	counts, err := h.analytics.Summary(r.Context(), since)
	if err != nil {
		h.logger.Error("failed to load stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Since:          since,
		Events:         counts,
		DroppedEvents:  h.analytics.Dropped(),
		ActiveSessions: h.quiz.ActiveSessions(),
	})
}

// scoreParams reads score and total. A missing total defaults to the bank size.
func (h *handler) scoreParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()

	score, err := strconv.Atoi(q.Get("score"))
	if err != nil {
		return 0, 0, errInvalidScore
	}

	total := h.quiz.StatementCount()
	if raw := q.Get("total"); raw != "" {
		total, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errInvalidScore
		}
	}

	if total <= 0 || total > maxShareTotal || score < 0 || score > total {
		return 0, 0, errInvalidScore
	}
	return score, total, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
