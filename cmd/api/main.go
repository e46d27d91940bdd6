package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minauth/auth-service/internal/api"
	"github.com/minauth/auth-service/internal/core/ports"
	"github.com/minauth/auth-service/internal/core/service"
	mongodb "github.com/minauth/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/minauth/auth-service/internal/infrastructure/db/redis"
	"github.com/minauth/auth-service/internal/pkg/config"
	"github.com/minauth/auth-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	var sessionRepo ports.SessionRepository
	switch cfg.SessionBackend {
	case "redis":
		sessionRepo = redisdb.NewSessionRepository(rdb, userRepo)
	default:
		mongoSessions := mongodb.NewSessionRepository(db, userRepo)
		if err := mongoSessions.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("session indexes failed")
		}
		sessionRepo = mongoSessions
	}

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	issuer := service.NewTokenIssuer(cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, sessionRepo, hasher, issuer, log)

	if err := service.BootstrapAdmin(ctx, userRepo, hasher, service.BootstrapConfig{
		Enabled:  cfg.Admin.Bootstrap,
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	e := api.NewRouter(authService, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.SessionBackend).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
