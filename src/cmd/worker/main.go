package main

import (
	"context"
	"time"

	"Backend-FormCraft/src/config"
	"Backend-FormCraft/src/database"
	"Backend-FormCraft/src/jobs"
	"Backend-FormCraft/src/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	if cfg.RedisURI == "" {
		logger.Fatalf("❌ REDIS_URI is required to run the worker")
	}

	db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("❌ Error connecting to the database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Disconnect(ctx)
	}()

	if err := jobs.Run(cfg, db); err != nil {
		logger.Errorf("❌ worker stopped: %v", err)
	}
}
