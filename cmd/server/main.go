package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"groupchat/internal/events"
	"groupchat/internal/server"
	"groupchat/internal/storage"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Cannot create logger: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Application is starting")

	srvCfg := server.EnvConfig{}
	if err := env.Parse(&srvCfg); err != nil {
		sugar.Fatalf("Cannot parse env config: %v", err)
	}

	storeCfg := storage.Config{}
	if err := env.Parse(&storeCfg); err != nil {
		sugar.Fatalf("Cannot parse storage env config: %v", err)
	}

	eventsCfg := events.Config{}
	if err := env.Parse(&eventsCfg); err != nil {
		sugar.Fatalf("Cannot parse events env config: %v", err)
	}

	ctx := context.Background()

	var repo storage.Repository
	switch storeCfg.Backend {
	case storage.BackendPostgres:
		repo, err = storage.NewPostgresRepository(ctx, sugar, storeCfg, storage.ConnectionTimeout(30*time.Second))
		if err != nil {
			sugar.Fatalf("Cannot create Postgres repository: %v", err)
		}
	case storage.BackendMemory:
		repo = storage.NewMemoryRepository()
	default:
		sugar.Fatalf("Unknown storage backend %q", storeCfg.Backend)
	}

	var presence storage.Presence
	switch storeCfg.Presence {
	case storage.BackendRedis:
		presence, err = storage.NewRedisPresence(ctx, storeCfg.RedisURL)
		if err != nil {
			sugar.Fatalf("Cannot create Redis presence: %v", err)
		}
	case storage.BackendMemory:
		presence = storage.NewMemoryPresence()
	default:
		sugar.Fatalf("Unknown presence backend %q", storeCfg.Presence)
	}

	store := storage.New(sugar, repo, presence, storage.ActivityThreshold(storeCfg.ActivityThreshold))
	publisher := events.New(sugar, eventsCfg)

	serverOpts := []server.Option{
		server.WithEnvConfig(srvCfg),
		server.WithPublisher(publisher),
		server.TimeoutHandler(30*time.Second, "Service Unavailable"),
		server.RegisterAfterShutdown(store.Close),
		server.RegisterAfterShutdown(func() {
			if err := publisher.Close(); err != nil {
				sugar.Errorf("Cannot close event publisher: %v", err)
			}
		}),
	}

	srv, err := server.NewServer(sugar, store, serverOpts...)
	if err != nil {
		sugar.Fatalf("Cannot create Server instance: %v", err)
	}

	if err := srv.Start(); err != nil {
		sugar.Fatalf("Cannot start http srv: %v", err)
	}
}
