package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/api"
	"github.com/yida7942-create/gmat-tutor/internal/config"
	"github.com/yida7942-create/gmat-tutor/internal/db"
	"github.com/yida7942-create/gmat-tutor/internal/importer"
	"github.com/yida7942-create/gmat-tutor/internal/jobs"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/scheduler"
	"github.com/yida7942-create/gmat-tutor/internal/services"
	"github.com/yida7942-create/gmat-tutor/internal/tutor"
	"github.com/yida7942-create/gmat-tutor/internal/weakness"
	"github.com/yida7942-create/gmat-tutor/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("GMAT Tutor Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("seed_file=%s", cfg.SeedFile)
	log.Debug("default_question_count=%d", cfg.DefaultQuestionCount)
	log.Debug("max_consecutive_same_tag=%d", cfg.MaxConsecutiveSameTag)
	log.Debug("keep_alive_quota=%.2f", cfg.KeepAliveQuota)
	log.Debug("consecutive_error_threshold=%d", cfg.ConsecutiveErrorThreshold)
	log.Debug("tutor_model=%s", cfg.TutorModel)
	log.Debug("tutor_worker_count=%d", cfg.TutorWorkerCount)
	log.Debug("tutor_queue_size=%d", cfg.TutorQueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	questions := sqlite.NewQuestionRepository(database.DB)
	studyLogs := sqlite.NewStudyLogRepository(database.DB)
	weaknesses := sqlite.NewWeaknessRepository(database.DB)
	stats := sqlite.NewStatsRepository(database.DB)
	sessionStore := sqlite.NewSessionStateRepository(database.DB)

	// Seed the question bank on first run.
	seedCtx := logger.NewContext(context.Background(), log)
	if _, err := importer.New(questions).SeedIfEmpty(seedCtx, cfg.SeedFile); err != nil {
		log.Error("failed to seed question bank: %v", err)
		os.Exit(1)
	}

	weaknessModel := weakness.NewModel(weaknesses)
	sched := scheduler.New(scheduler.Config{
		DefaultQuestionCount:      cfg.DefaultQuestionCount,
		MaxConsecutiveSameTag:     cfg.MaxConsecutiveSameTag,
		KeepAliveQuota:            cfg.KeepAliveQuota,
		ConsecutiveErrorThreshold: cfg.ConsecutiveErrorThreshold,
	}, questions, studyLogs, weaknesses, stats)

	tutorClient := tutor.New(tutor.Config{
		APIKey:    cfg.TutorAPIKey,
		BaseURL:   cfg.TutorBaseURL,
		Model:     cfg.TutorModel,
		MaxTokens: cfg.TutorMaxTokens,
	})
	if tutorClient.IsAvailable() {
		log.Info("AI tutor enabled: model=%s", cfg.TutorModel)
	} else {
		log.Warn("AI tutor disabled (no API key), serving fallback text")
	}

	pool := worker.NewPool(cfg.TutorWorkerCount, cfg.TutorQueueSize)
	explanationCache := jobs.NewExplanationCache()

	practiceService := services.NewPracticeService(questions, studyLogs, weaknessModel, sched, tutorClient, pool, explanationCache)
	analyticsService := services.NewAnalyticsService(sched, questions, stats)
	tutorService := services.NewTutorService(questions, studyLogs, tutorClient, explanationCache)
	sessionService := services.NewSessionService(sessionStore)

	srv := &api.Server{
		Practice:  practiceService,
		Analytics: analyticsService,
		Tutor:     tutorService,
		Session:   sessionService,
		Pool:      pool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	pool.Stop()

	if err := database.Checkpoint(shutdownCtx); err != nil {
		log.Warn("WAL checkpoint failed: %v", err)
	}

	log.Info("===========================================")
	log.Info("GMAT Tutor Server Stopped")
	log.Info("===========================================")
}
