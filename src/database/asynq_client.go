package database

import (
	"github.com/hibiken/asynq"

	"Backend-FormCraft/src/logger"
)

var AsynqClient *asynq.Client

// InitAsynq initializes the Asynq client only if Redis is available.
func InitAsynq() *asynq.Client {
	if RedisClient == nil || RedisURI == "" {
		logger.Warnf("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	logger.Infof("✅ Asynq Client initialized successfully")
	return AsynqClient
}
