// Package main is the entry point for the shopledger API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopledger/internal/config"
	"shopledger/internal/domain/auth"
	"shopledger/internal/domain/ledger"
	v1 "shopledger/internal/infrastructure/http/v1"
	"shopledger/internal/infrastructure/metrics"
	"shopledger/internal/infrastructure/storage"
	"shopledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.IsDevelopment(),
		Process:     "server",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting shopledger server", "env", cfg.App.Env, "storage", cfg.Storage.Driver)

	// --- Storage ---
	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalw("failed to open storage", "error", err)
	}
	defer backend.Close()

	// --- Metrics ---
	m := metrics.New(cfg.Metrics.Prefix)

	// --- Ledger ---
	l, err := ledger.Open(ctx, backend.Store, ledger.Options{
		TxManager: backend.TxManager,
		Location:  cfg.Location,
		Observer:  m,
	})
	if err != nil {
		log.Fatalw("failed to open ledger", "error", err)
	}
	if l.IsFresh() {
		log.Info("store is empty; run the seed command for demonstration data")
	}

	// --- Auth ---
	var authService *auth.Service
	if cfg.Auth.Enabled() {
		jwtConfig := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
		jwtConfig.AccessTokenTTL = cfg.Auth.JWTTTL
		authService = auth.NewService(
			auth.DefaultServiceConfig(cfg.Auth.OperatorUsername, cfg.Auth.OperatorPasswordHash),
			auth.NewJWTService(jwtConfig),
		)
		log.Infow("operator authentication enabled", "username", cfg.Auth.OperatorUsername)
	} else {
		log.Warn("operator authentication disabled: OPERATOR_PASSWORD_HASH is empty")
	}

	// --- Router ---
	routerCfg := v1.RouterConfig{
		Ledger:        l,
		Logger:        log,
		AuthService:   authService,
		Metrics:       m,
		StorageDriver: backend.Driver,
	}
	if backend.Pool != nil {
		routerCfg.Pinger = backend.Pool
	}
	router := v1.NewRouter(routerCfg)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
