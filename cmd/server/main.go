package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	httpapi "chess-relay/internal/api/http"
	"chess-relay/internal/api/ws"
	"chess-relay/internal/archive"
	"chess-relay/internal/config"
	"chess-relay/internal/session"
	"chess-relay/internal/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chess-relay",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	rooms := store.NewMemoryStore()
	sessions := session.NewManager(rooms, cfg.CodeLength, logger)

	var games *archive.Store
	if cfg.DBPath != "" {
		games, err = archive.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open game archive, continuing without it", "err", err)
			games = nil
		} else {
			defer games.Close()
			sessions.SetResultSaver(games)
			logger.Info("game archive enabled", "path", cfg.DBPath)
		}
	}

	router := ws.NewRouter(sessions, logger)
	hub := ws.NewHub(router, cfg.AllowedOrigin, logger)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(hub, rooms, games),
	}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
