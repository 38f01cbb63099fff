package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/NizCom/JaMoveo-backend/internal/catalog"
	"github.com/NizCom/JaMoveo-backend/internal/config"
	"github.com/NizCom/JaMoveo-backend/internal/database"
	"github.com/NizCom/JaMoveo-backend/internal/live"
	"github.com/NizCom/JaMoveo-backend/internal/logging"
	"github.com/NizCom/JaMoveo-backend/internal/router"
	"github.com/NizCom/JaMoveo-backend/internal/session"
)

func main() {
	// Initialize structured logging (reads LOGGING_LEVEL env var)
	logging.Initialize()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	sqlDB, err := database.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Run migrations
	if err := database.RunMigrations(sqlDB); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	musicians := database.NewMusicianStore(sqlDB)

	// Song catalog
	store, err := catalog.NewFSStore(cfg.SongsDir)
	if err != nil {
		slog.Error("failed to open songs directory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cat := catalog.New(store)

	// Live session state and hub
	state := session.New()
	hub := live.NewHub(state)
	go hub.Run()

	// Create router
	r := router.New(cfg, musicians, cat, state, hub)

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting server", slog.String("addr", addr), slog.String("songs_dir", cfg.SongsDir))

	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
