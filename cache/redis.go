package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps cached responses in Redis. Each family tracks its keys in
// a set so invalidation can drop them all at once.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithTTL(d time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = d }
}

func NewRedisStore(rdb *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: "smartparker:responses",
		ttl:    5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) entryKey(family, key string) string {
	return s.prefix + ":" + family + ":" + key
}

func (s *RedisStore) familySet(family string) string {
	return s.prefix + ":" + family + ":keys"
}

func (s *RedisStore) Get(ctx context.Context, family, key string) ([]byte, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}

	value, err := s.rdb.Get(ctx, s.entryKey(family, key)).Bytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, family, key string, value []byte) {
	if s == nil || s.rdb == nil {
		return
	}

	entryKey := s.entryKey(family, key)

	pipe := s.rdb.Pipeline()
	pipe.Set(ctx, entryKey, value, s.ttl)
	pipe.SAdd(ctx, s.familySet(family), entryKey)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.familySet(family), s.ttl)
	}
	_, _ = pipe.Exec(ctx)
}

func (s *RedisStore) Invalidate(ctx context.Context, family string) {
	if s == nil || s.rdb == nil {
		return
	}

	setKey := s.familySet(family)
	keys, err := s.rdb.SMembers(ctx, setKey).Result()
	if err != nil {
		return
	}

	pipe := s.rdb.Pipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, setKey)
	_, _ = pipe.Exec(ctx)
}
