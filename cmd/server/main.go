package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/meli-labs/seller-dashboard/config"
	"github.com/meli-labs/seller-dashboard/internal/email"
	"github.com/meli-labs/seller-dashboard/internal/health"
	"github.com/meli-labs/seller-dashboard/internal/infrastructure/postgres"
	ctxlog "github.com/meli-labs/seller-dashboard/internal/log"
	"github.com/meli-labs/seller-dashboard/internal/marketplace"
	"github.com/meli-labs/seller-dashboard/internal/metrics"
	"github.com/meli-labs/seller-dashboard/internal/password"
	"github.com/meli-labs/seller-dashboard/internal/token"
	httptransport "github.com/meli-labs/seller-dashboard/internal/transport/http"
	"github.com/meli-labs/seller-dashboard/internal/transport/http/handler"
	"github.com/meli-labs/seller-dashboard/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)
	mail := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, tokens, mail, logger)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Dashboard data
	meliAPI := marketplace.NewClient("")
	snapshot := marketplace.LoadSnapshot(cfg.CDDataPath, logger)
	refresher, err := snapshot.StartRefresher(cfg.SnapshotRefresh)
	if err != nil {
		stop()
		log.Fatalf("snapshot refresher: %v", err)
	}
	marketHandler := handler.NewMarketplaceHandler(meliAPI, snapshot, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, marketHandler, tokens),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	refresher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
