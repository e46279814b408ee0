// Package jobs runs the asynq worker that delivers background tasks.
package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-FormCraft/src/config"
	"Backend-FormCraft/src/logger"
	"Backend-FormCraft/src/services/notifications"
)

// RegisterHandlers binds every task type to its handler.
func RegisterHandlers(mux *asynq.ServeMux, sender notifications.MailSender, store notifications.Store, resultsURL func(string) string) {
	mux.HandleFunc(notifications.TypeNotifySubmission, notifications.HandleNotifySubmission(sender, store, resultsURL))
}

// NewServer builds the asynq server for cfg.
func NewServer(cfg *config.Config) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisURI},
		asynq.Config{
			Concurrency:     cfg.WorkerConcurrency,
			Queues:          map[string]int{"default": 1},
			ShutdownTimeout: 10 * time.Second,
			Logger:          logger.Logger,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				logger.Errorf("❌ task %s failed (retry %d/%d): %v", task.Type(), retried, maxRetry, err)
			}),
		},
	)
}

// Run starts the worker and blocks until it receives SIGTERM or SIGINT.
func Run(cfg *config.Config, db *mongo.Database) error {
	sender, err := notifications.NewSMTPSender(cfg)
	if err != nil {
		return err
	}
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, sender, notifications.NewMongoStore(db), cfg.ResultsURL)

	logger.Infof("✅ Worker started with concurrency=%d", cfg.WorkerConcurrency)
	return NewServer(cfg).Run(mux)
}
