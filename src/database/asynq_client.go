package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq creates the queue client on the Redis at uri. It stays nil when
// InitRedis did not connect, and purchases then skip receipt tasks.
func InitAsynq(uri string) {
	if RedisClient == nil || uri == "" {
		log.Println("⚠️ Redis not available, purchase receipts will not be queued")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: uri})
	log.Println("✅ Asynq client connected to", uri)
}
