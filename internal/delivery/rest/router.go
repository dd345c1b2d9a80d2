package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

type QuizService interface {
	Statements() []entities.Statement
	StatementByID(id int) (entities.Statement, error)
	StatementCount() int
	ActiveSessions() int
}

type StoryRenderer interface {
	Render(score, total int, dark bool) ([]byte, error)
}

// Analytics records API events and reports aggregated counts.
type Analytics interface {
	Track(userID int64, name string, props map[string]any)
	Summary(ctx context.Context, since time.Time) (map[string]int64, error)
	Dropped() int64
}

// Container holds all dependencies for the router.
type Container struct {
	Quiz      QuizService
	Stories   StoryRenderer
	Analytics Analytics
	ShareURL  string
	Logger    *zap.Logger
}

// NewRouter creates the share API router.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	h := newHandler(c)

	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(h.logger))

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/statements", h.listStatements).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/statements/{id:[0-9]+}", h.getStatement).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/share", h.getShare).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/story.png", h.getStory).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/stats", h.getStats).Methods(http.MethodGet, http.MethodOptions)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
