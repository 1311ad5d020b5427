package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Invalidator drops cached list views after a write batch. A nil client is
// a no-op so the API degrades gracefully when Redis is unavailable.
type Invalidator struct {
	client *redis.Client
}

// NewClient connects to Redis and returns nil when the server cannot be
// reached, in which case callers should run without caching.
func NewClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable addr=%s err=%v, caching disabled", addr, err)
		return nil
	}
	return client
}

func NewInvalidator(client *redis.Client) *Invalidator {
	return &Invalidator{client: client}
}

// InvalidateSchedule removes every cached class-list and template-list view
// for the organization. Errors are logged, never propagated: a stale cache
// entry expires on its own TTL.
func (i *Invalidator) InvalidateSchedule(ctx context.Context, orgID int64) {
	if i == nil || i.client == nil {
		return
	}

	for _, pattern := range []string{
		fmt.Sprintf("classes:%d:*", orgID),
		fmt.Sprintf("templates:%d:*", orgID),
	} {
		iter := i.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := i.client.Del(ctx, iter.Val()).Err(); err != nil {
				log.Printf("cache invalidate key=%s err=%v", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			log.Printf("cache scan pattern=%s err=%v", pattern, err)
		}
	}
}
