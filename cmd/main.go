package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/config"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/middlewares"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Production())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	var limiter middlewares.CounterStore
	if cfg.RedisAddr != "" {
		limiter = middlewares.NewRedisCounterStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("rate limiting backed by redis", zap.String("addr", cfg.RedisAddr))
	} else {
		mem := middlewares.NewMemoryCounterStore()
		mem.StartSweeper(context.Background(), time.Hour)
		limiter = mem
	}

	r := routes.SetupRouter(db, cfg, logger, limiter)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
