package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client used for mortgage quote caching.
//
// Supported env vars:
//   - REDIS_ADDR (e.g. localhost:6379); empty disables Redis
//   - REDIS_PASSWORD (optional)
//   - REDIS_DB (default: 0)
//
// It returns nil when Redis is disabled or unreachable; callers fall back to
// an in-process cache.
func ConnectRedis(ctx context.Context) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[mortgage][cache] REDIS_ADDR not set; redis disabled")
		return nil
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("[mortgage][cache] invalid REDIS_DB=%q; using 0", raw)
		} else {
			db = v
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[mortgage][cache] redis ping failed addr=%s err=%v", addr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[mortgage][cache] redis connected addr=%s db=%d", addr, db)
	return client
}
