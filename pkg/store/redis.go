package store

import (
	"context"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/layout"
)

// redis key layout:
//
//	gridboard:layout:<name>  serialized snapshot
//	gridboard:most-recent    name of the last saved layout
const (
	redisLayoutPrefix  = "gridboard:layout:"
	redisMostRecentKey = "gridboard:most-recent"
)

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr     string // host:port
	Password string // optional
	DB       int
}

// RedisStore keeps layouts in Redis, one key per layout.
// Records never expire; layouts live until deleted.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client}, nil
}

// Save writes the snapshot and updates the most-recent pointer.
func (s *RedisStore) Save(ctx context.Context, snap *layout.Snapshot) error {
	if err := errors.ValidateLayoutName(snap.Name); err != nil {
		return err
	}
	data, err := layout.Encode(snap)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisLayoutPrefix+snap.Name, data, 0)
	pipe.Set(ctx, redisMostRecentKey, snap.Name, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "save layout %q", snap.Name)
	}
	return nil
}

// Load retrieves and decodes the snapshot under name.
func (s *RedisStore) Load(ctx context.Context, name string) (*layout.Snapshot, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, redisLayoutPrefix+name).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "load layout %q", name)
	}

	snap, err := layout.Decode(data)
	if err != nil {
		return nil, ErrNotFound
	}
	snap.Name = name
	return snap, nil
}

// Delete removes the layout key.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateLayoutName(name); err != nil {
		return err
	}
	if err := s.client.Del(ctx, redisLayoutPrefix+name).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "delete layout %q", name)
	}
	return nil
}

// MostRecent resolves the pointer key and loads the layout it names.
func (s *RedisStore) MostRecent(ctx context.Context) (*layout.Snapshot, error) {
	name, err := s.client.Get(ctx, redisMostRecentKey).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read most-recent pointer")
	}
	return s.Load(ctx, name)
}

// List scans for layout keys and returns the names sorted lexically.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, redisLayoutPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), redisLayoutPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "scan layouts")
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
