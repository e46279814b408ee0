package main

import (
	"context"
	"flag"
	"time"

	"Backend-FormCraft/src/config"
	"Backend-FormCraft/src/database"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/seeder"
	"Backend-FormCraft/src/services/templates"
)

func main() {
	opts := seeder.DefaultOptions()
	flag.IntVar(&opts.ResponsesPerForm, "responses", opts.ResponsesPerForm, "responses per demo form")
	flag.IntVar(&opts.ViewsPerResponse, "views", opts.ViewsPerResponse, "views per response")
	flag.IntVar(&opts.Days, "days", opts.Days, "spread data over the last N days")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	db, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("❌ Error connecting to the database: %v", err)
	}
	catalogue, err := templates.Load()
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := seeder.SeedDemo(ctx, db, catalogue, opts); err != nil {
		logger.Errorf("❌ seed failed: %v", err)
	}
	_ = database.Disconnect(ctx)
}
