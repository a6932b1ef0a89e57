package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magictravel/internal/config"
	"magictravel/internal/infra"
	"magictravel/internal/repository"
	"magictravel/internal/router"
	"magictravel/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The operator agency identity is resolved exactly once, here. Every
	// classification downstream receives the id, never the lookup.
	agenciaRepo := repository.NewAgenciaRepository(db)
	magicTravelID, err := infra.ResolverIdentidadOperadora(ctx, cfg, agenciaRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve operator agency")
	}

	// Async worker pool: audit trail and liquidation report emails.
	mailer := infra.NewMailer(cfg)
	bitacoraRepo := repository.NewBitacoraRepository(db)
	workerHandlers := &worker.WorkerHandlers{
		Bitacora: worker.NewBitacoraWorker(bitacoraRepo),
		Email:    worker.NewEmailWorker(mailer, cfg.PDFStoragePath),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	r, liquidacionSvc := router.New(cfg, db, rdb, magicTravelID)

	// Periodic bulk refresh of route occupancy states
	worker.StartLiquidacionCron(ctx, liquidacionSvc, cfg.LiquidacionCronMinutes)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Magic Travel backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
