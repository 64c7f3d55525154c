package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ConnectRedis establishes connection to Redis. It returns nil when Redis is
// unreachable; the reward cache is then disabled.
func ConnectRedis(ctx context.Context, cfg *Config, log *logrus.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.WithError(err).Warn("Redis connection failed, reward cache disabled")
		_ = client.Close()
		return nil
	}

	log.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	return client
}
