package cache

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
)

// Store is a TTL key/value cache. Get reports a miss with ok=false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// GetOrLoad returns the cached value for key or calls load and caches its result.
// Cache failures degrade to a direct load; load errors are never cached.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if store == nil || ttl <= 0 {
		return load(ctx)
	}

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warnf("[cache] get failed key=%s err=%v", key, err)
	}
	if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Warnf("[cache] dropping undecodable entry key=%s", key)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		log.Warnf("[cache] encode failed key=%s err=%v", key, err)
		return value, nil
	}
	if err := store.Set(ctx, key, encoded, ttl); err != nil {
		log.Warnf("[cache] set failed key=%s err=%v", key, err)
	}
	return value, nil
}
