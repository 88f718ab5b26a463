package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edustack/course-platform/internal/api"
	"github.com/edustack/course-platform/internal/core/service"
	"github.com/edustack/course-platform/internal/core/token"
	"github.com/edustack/course-platform/internal/infrastructure/db/memory"
	mongodb "github.com/edustack/course-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/edustack/course-platform/internal/infrastructure/db/redis"
	"github.com/edustack/course-platform/internal/infrastructure/queue"
	"github.com/edustack/course-platform/internal/pkg/config"
	"github.com/edustack/course-platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// An empty signing secret means the service cannot issue tokens safely.
	issuer, err := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Stores ---
	creds := mongodb.NewCredentialStore(db)
	if err := creds.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}
	roles := mongodb.NewRoleStore(db)
	auditStore := mongodb.NewAuditStore(db)
	courseRepo := memory.NewCourseRepository(memory.SeedCourses())
	courseCache := redisdb.NewCourseCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(creds, roles, issuer, log)
	courseService := service.NewCourseService(courseRepo, courseCache, log)

	dispatcher := queue.NewDispatcher(0, auditStore, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		AuthService:   authService,
		CourseService: courseService,
		Audit:         dispatcher,
		DemoAccounts:  memory.SeedDemoAccounts(),
		JWTSecret:     cfg.JWT.Secret,
		Mongo:         db,
		Redis:         rdb,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
