package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultPresenceKey is the sorted set holding userId members scored by last heartbeat in unix milliseconds
const defaultPresenceKey = "chat:presence"

// RedisPresence shares heartbeats between server instances through a Redis sorted set.
type RedisPresence struct {
	client *redis.Client
	key    string
}

// NewRedisPresence parses redisURL (e.g. "redis://localhost:6379/0"), connects and pings the server
func NewRedisPresence(ctx context.Context, redisURL string) (*RedisPresence, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisPresenceFromClient(client, defaultPresenceKey), nil
}

// NewRedisPresenceFromClient wraps an existing client; the presence set is stored under key
func NewRedisPresenceFromClient(client *redis.Client, key string) *RedisPresence {
	return &RedisPresence{client: client, key: key}
}

// Touch records at for userID; ZADD GT keeps the newest heartbeat
func (p *RedisPresence) Touch(ctx context.Context, userID int64, at time.Time) error {
	err := p.client.ZAddArgs(ctx, p.key, redis.ZAddArgs{
		GT: true,
		Members: []redis.Z{{
			Score:  float64(at.UnixMilli()),
			Member: strconv.FormatInt(userID, 10),
		}},
	}).Err()
	if err != nil {
		return fmt.Errorf("recording heartbeat of user %d: %w", userID, err)
	}
	return nil
}

func (p *RedisPresence) LastSeen(ctx context.Context) (map[int64]time.Time, error) {
	entries, err := p.client.ZRangeWithScores(ctx, p.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading heartbeats: %w", err)
	}

	out := make(map[int64]time.Time, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		out[id] = time.UnixMilli(int64(e.Score))
	}
	return out, nil
}

func (p *RedisPresence) Close() error {
	return p.client.Close()
}
