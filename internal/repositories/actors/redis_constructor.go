package actors

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/paranoidworld/internal/uuid"
)

// NewRedis creates a new Redis-backed actor repository
func NewRedis(client redis.UniversalClient, logger *zap.Logger) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		Logger:        logger,
	})
}
