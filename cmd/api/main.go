// Command api serves the education platform REST API.
//
// @title                       Education Platform API
// @version                     1.0
// @description                 Users, articles and courses with bearer-token authentication.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/api"
	"github.com/eduplatform/education-api/internal/api/docs"
	"github.com/eduplatform/education-api/internal/api/handler"
	"github.com/eduplatform/education-api/internal/api/metrics"
	"github.com/eduplatform/education-api/internal/core/security"
	"github.com/eduplatform/education-api/internal/core/service"
	"github.com/eduplatform/education-api/internal/infrastructure/config"
	mongodb "github.com/eduplatform/education-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eduplatform/education-api/internal/infrastructure/db/redis"
	"github.com/eduplatform/education-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "education-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Algorithm, cfg.Auth.AccessTTL())
	if err != nil {
		return err
	}

	userRepo := mongodb.NewUserRepository(db)
	identityCache := redisdb.NewIdentityCache(rdb, cfg.Auth.IdentityCacheTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, logger.Component("auth"),
		service.WithIdentityCache(identityCache),
		service.WithAuthRecorder(metrics.AuthRecorder{}),
	)
	userService := service.NewUserService(userRepo, hasher, identityCache, logger.Component("users"))
	articleService := service.NewArticleService(mongodb.NewArticleRepository(db), logger.Component("articles"))
	courseService := service.NewCourseService(mongodb.NewCourseRepository(db), logger.Component("courses"))

	docs.SwaggerInfo.BasePath = cfg.APIPrefix

	e := api.NewRouter(api.Deps{
		APIPrefix: cfg.APIPrefix,
		Log:       logger.Component("http"),
		Auth:      authService,
		Users:     userService,
		Articles:  articleService,
		Courses:   courseService,
		Checks: []handler.DependencyCheck{
			handler.MongoCheck(db),
			handler.RedisCheck(rdb),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("api_prefix", cfg.APIPrefix).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
