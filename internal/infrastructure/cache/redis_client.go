package cache

import (
	"log"

	appconfig "campuspay/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// Connect creates the Redis client backing the status cache. The cache is
// optional: an empty REDIS_ADDR returns nil and the reconciler runs without
// polling throttling.
func Connect(cfg appconfig.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Printf("[payment][cache] REDIS_ADDR not set; status cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	log.Printf("[payment][cache] redis status cache enabled addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return client
}
