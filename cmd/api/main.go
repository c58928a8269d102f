package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mindcare-app/backend/internal/analysis/triage"
	"github.com/mindcare-app/backend/internal/config"
	"github.com/mindcare-app/backend/internal/handler"
	"github.com/mindcare-app/backend/internal/logging"
	emergencyModel "github.com/mindcare-app/backend/internal/model/emergency"
	therapyModel "github.com/mindcare-app/backend/internal/model/therapy"
	authService "github.com/mindcare-app/backend/internal/service/auth"
	chatService "github.com/mindcare-app/backend/internal/service/chat"
	forumService "github.com/mindcare-app/backend/internal/service/forum"
	moodService "github.com/mindcare-app/backend/internal/service/mood"
	playerService "github.com/mindcare-app/backend/internal/service/player"
	settingsService "github.com/mindcare-app/backend/internal/service/settings"
	therapyService "github.com/mindcare-app/backend/internal/service/therapy"
	weatherService "github.com/mindcare-app/backend/internal/service/weather"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.Init(cfg.Logging.Dir, cfg.Logging.Dev)
	if err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}

	therapists, err := therapyModel.LoadSeedFile(cfg.Seeds.TherapistFile)
	if err != nil {
		logger.Fatal("failed to load therapist directory", zap.Error(err))
	}
	contacts, err := emergencyModel.LoadSeedFile(cfg.Seeds.EmergencyFile)
	if err != nil {
		logger.Fatal("failed to load emergency contacts", zap.Error(err))
	}

	responder := triage.NewResponder(nil)
	chatSvc := chatService.NewService(store, responder, logger, cfg.Chat.ReplyDelayMin, cfg.Chat.ReplyDelayMax)
	authSvc := authService.NewService(store, cfg.Auth, logger)
	settingsSvc := settingsService.NewService(store, logger)
	moodSvc := moodService.NewService(store, logger, nil)
	forumSvc := forumService.NewService(store, logger, nil)
	therapySvc := therapyService.NewService(therapyModel.NewMemoryStore(therapists), store, logger, nil)
	playerSvc := playerService.NewService(store, logger)

	var weatherSvc *weatherService.Service
	if cfg.Weather.Enabled() {
		weatherSvc = weatherService.NewService(cfg.Weather, nil, logger)
		logger.Info("weather widget enabled", zap.String("defaultCity", cfg.Weather.DefaultCity))
	} else {
		logger.Info("weather API key not configured, widget disabled")
	}

	router := handler.NewRouter(handler.Services{
		Auth:      authSvc,
		Settings:  settingsSvc,
		Chat:      chatSvc,
		Mood:      moodSvc,
		Forum:     forumSvc,
		Therapy:   therapySvc,
		Player:    playerSvc,
		Weather:   weatherSvc,
		Emergency: contacts,
	})

	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("MindCare backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
