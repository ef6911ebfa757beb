package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/ascii-maze-api/maze"
	"github.com/beka-birhanu/ascii-maze-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// document key string format
const documentKeyFmt = "maze:%s"

// RedisDocumentCache caches serialized maze documents in Redis with
// TTL support. Writes take a per-title lock so a conversion and a
// removal racing on the same title cannot interleave.
type RedisDocumentCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisDocumentCache initializes a RedisDocumentCache with the provided Redis client and TTL.
func NewRedisDocumentCache(client *redis.Client, ttlSeconds int) (i.DocumentCache, error) {
	cache := &RedisDocumentCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Set stores the serialized document under the title's key with the
// configured expiration.
func (c *RedisDocumentCache) Set(ctx context.Context, title string, doc *maze.WallDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	mutex := c.locker.NewMutex(c.key(title) + ":write_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return c.client.Set(ctx, c.key(title), data, c.ttl).Err()
}

// Get retrieves the cached document for the title. A miss is
// reported as (nil, nil).
func (c *RedisDocumentCache) Get(ctx context.Context, title string) (*maze.WallDocument, error) {
	data, err := c.client.Get(ctx, c.key(title)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc maze.WallDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Invalidate drops the cached document for the title.
func (c *RedisDocumentCache) Invalidate(ctx context.Context, title string) error {
	mutex := c.locker.NewMutex(c.key(title) + ":write_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return c.client.Del(ctx, c.key(title)).Err()
}

func (c *RedisDocumentCache) key(title string) string {
	return fmt.Sprintf(documentKeyFmt, title)
}
