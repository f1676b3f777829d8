package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "clinic-api",
		Short:        "API de agendamento da clínica",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria tabelas e índices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.Env)

			db, err := dbpkg.Open(cfg)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}

			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.Env)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Error().Err(err).Msg("migration failed")
		return err
	}

	ctx := context.Background()

	// --------------------------------------------------
	// Lock de agendamento
	// --------------------------------------------------
	var (
		locker      lock.Locker
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = lock.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable")
			return err
		}
		defer redisClient.Close()
		locker = lock.NewRedisLocker(redisClient, cfg.Booking.LockTTL, cfg.Booking.LockWait)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("booking lock: redis")
	} else {
		locker = lock.NewLocalLocker(cfg.Booking.LockWait)
		log.Info().Msg("booking lock: in-process")
	}

	// --------------------------------------------------
	// Fotos
	// --------------------------------------------------
	var photos storage.PhotoStore
	if cfg.S3.Enabled() {
		photos = storage.NewS3Store(cfg.S3)
	} else {
		log.Warn().Msg("S3 not configured, photo upload disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	gin.SetMode(cfg.GinMode)
	r := gin.New()

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Log:    log,
		Audit:  dispatcher,
		Locker: locker,
		Redis:  redisClient,
		Photos: photos,
	})

	return serve(r, cfg.Addr(), log)
}

func serve(handler http.Handler, addr string, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
