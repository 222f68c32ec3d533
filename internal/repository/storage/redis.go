package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

const redisDialTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis host is empty")

// RedisStorage - client for the task list kept in Redis.
type RedisStorage struct {
	Connection *redis.Client
}

// NewRedisStorage - dials the configured server and checks it answers before handing out the client.
func NewRedisStorage(ctx context.Context, conf config.Redis) (*RedisStorage, error) {
	if conf.Host == "" {
		return nil, ErrAddrNotFound
	}

	conn := redis.NewClient(&redis.Options{
		Addr:        conf.GetRedisAddr(),
		Password:    conf.Password,
		DB:          conf.DB,
		DialTimeout: redisDialTimeout,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("task storage at %s unreachable: %w", conf.GetRedisAddr(), err)
	}

	return &RedisStorage{Connection: conn}, nil
}

func (that *RedisStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("failed to close task storage: %w", err)
	}

	return nil
}
