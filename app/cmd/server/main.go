package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/AntonStoeckl/todolist-go/app/shared/shell/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(config.Config{}, os.Stderr).Error("loading configuration failed", "error", err.Error())
		return 1
	}

	logger := config.NewLogger(cfg, os.Stdout)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err.Error())
		return 1
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("closing resources failed", "error", closeErr.Error())
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      app.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("HTTP server failed", "error", err.Error())
			return 1
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err.Error())
		return 1
	}

	logger.Info("HTTP server stopped")

	return 0
}
