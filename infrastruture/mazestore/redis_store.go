package mazestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ i.MazeStore = &RedisStore{}

// RedisStore keeps mazes in Redis with TTL support.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttlSeconds int) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	store := &RedisStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Save writes a maze and sets its expiration. Concurrent writers of the
// same ID are serialized by a distributed lock.
func (rs *RedisStore) Save(ctx context.Context, record *dmn.MazeRecord) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	mutex := rs.locker.NewMutex(lockKey(record.ID))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking maze %s: %w", record.ID, err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	return rs.client.Set(ctx, mazeKey(record.ID), data, rs.ttl).Err()
}

// ByID retrieves and decodes a maze.
func (rs *RedisStore) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	data, err := rs.client.Get(ctx, mazeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, err
	}
	return decodeRecord(data)
}

// Delete removes a maze.
func (rs *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := rs.client.Del(ctx, mazeKey(id)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return dmn.ErrMazeNotFound
	}
	return nil
}
