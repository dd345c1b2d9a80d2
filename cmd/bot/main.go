package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/pransh15/html-myths-quiz/internal/config"
	"github.com/pransh15/html-myths-quiz/internal/delivery/rest"
	"github.com/pransh15/html-myths-quiz/internal/delivery/telegram"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
	pgrepo "github.com/pransh15/html-myths-quiz/internal/infra/postgres/repository"
	"github.com/pransh15/html-myths-quiz/internal/logger"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
	"github.com/pransh15/html-myths-quiz/internal/repository"
	"github.com/pransh15/html-myths-quiz/internal/service"
	"github.com/pransh15/html-myths-quiz/internal/story"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database.
	dsn, err := cfg.DB.DSN()
	if err != nil {
		lg.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		lg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		lg.Fatal("failed to create schema", zap.Error(err))
	}

	// Initialize repositories.
	statementRepo, err := repository.NewStatementRepository(cfg.StatementsPath)
	if err != nil {
		lg.Fatal("failed to load statements", zap.Error(err))
	}
	settingsRepo := pgrepo.NewSettingsRepository(pool)
	eventRepo := pgrepo.NewEventRepository(pool)
	transactor := postgres.NewTransactor(pool)

	// Initialize services.
	analytics := service.NewAnalyticsService(
		eventRepo,
		lg,
		cfg.Analytics.BufferSize,
		cfg.Analytics.BatchSize,
		cfg.Analytics.FlushInterval,
	)
	retention := service.NewRetentionService(
		eventRepo,
		cfg.Analytics.Retention,
		cfg.Analytics.RetentionSchedule,
		lg,
	)
	settingsService := service.NewSettingsService(settingsRepo, transactor)
	quizService := service.NewQuizService(
		statementRepo,
		quiz.NewShuffler(nil),
		analytics.ForUser,
		cfg.TransitionDelay,
	)

	stories, err := story.NewRenderer(story.Options{
		MDNLogoPath:     cfg.Story.MDNLogoPath,
		MozFestLogoPath: cfg.Story.MozFestLogoPath,
	}, lg)
	if err != nil {
		lg.Fatal("failed to initialize story renderer", zap.Error(err))
	}

	var wg sync.WaitGroup

	// The analytics worker outlives the bot loop so it can flush on shutdown.
	analyticsCtx, stopAnalytics := context.WithCancel(context.Background())
	wg.Add(1)
	go func() {
		defer wg.Done()
		analytics.Run(analyticsCtx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		retention.Start(ctx)
	}()

	// Share API.
	var server *http.Server
	if cfg.HTTP.Addr != "" {
		server = &http.Server{
			Addr: cfg.HTTP.Addr,
			Handler: rest.NewRouter(&rest.Container{
				Quiz:      quizService,
				Stories:   stories,
				Analytics: analytics,
				ShareURL:  cfg.ShareURL,
				Logger:    lg,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Info("http server started", zap.String("addr", cfg.HTTP.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				lg.Error("http server failed", zap.Error(err))
			}
		}()
	}

	// Telegram bot.
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	handler := telegram.NewHandler(
		bot,
		lg,
		quizService,
		settingsService,
		analytics,
		stories,
		cfg.ShareURL,
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped with error", zap.Error(err))
	}

	lg.Info("shutdown signal received")

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("http server shutdown failed", zap.Error(err))
		}
		cancel()
	}

	quizService.Close()
	stopAnalytics()
	wg.Wait()
}
