package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mleone/ironwill/internal/api"
	"github.com/mleone/ironwill/internal/config"
	"github.com/mleone/ironwill/internal/db"
	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository/sqlite"
	"github.com/mleone/ironwill/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Ironwill Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("sobriety_start=%s", cfg.SobrietyStart)
	log.Debug("reading_streak_start=%s", cfg.ReadingStreakStart)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// XP tier tables: embedded defaults, overridable from disk
	tiers := engine.DefaultTiers()
	if cfg.XPTiersPath != "" {
		tiers, err = engine.LoadTiersFile(cfg.XPTiersPath)
		if err != nil {
			log.Error("failed to load XP tiers from %s: %v", cfg.XPTiersPath, err)
			os.Exit(1)
		}
		log.Info("XP tiers loaded from %s", cfg.XPTiersPath)
	}

	// Validate() guarantees these parse.
	sobrietyStart, _ := models.ParseDate(cfg.SobrietyStart)
	readingStart, _ := models.ParseDate(cfg.ReadingStreakStart)
	defaults := services.StreakDefaults{
		SobrietyStart:   sobrietyStart,
		ReadingMinStart: readingStart,
	}

	// Initialize repositories and services
	entryRepo := sqlite.NewEntryRepository(database.DB)
	compoundRepo := sqlite.NewCompoundRepository(database)
	anchorRepo := sqlite.NewAnchorRepository(database.DB)
	profileRepo := sqlite.NewProfileRepository(database.DB)
	bookRepo := sqlite.NewBookRepository(database.DB)

	srv := &api.Server{
		Entries:  services.NewEntryService(entryRepo, compoundRepo, tiers),
		Progress: services.NewProgressService(entryRepo, anchorRepo, tiers, defaults),
		Compound: services.NewCompoundService(compoundRepo),
		Stats:    services.NewStatsService(entryRepo),
		Profiles: services.NewProfileService(profileRepo),
		Books:    services.NewBookService(bookRepo),
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Ironwill Server Stopped")
	log.Info("===========================================")
}
