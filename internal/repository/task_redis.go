package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type redisTasks struct {
	client *redis.Client
	key    string
}

func NewRedisTaskRepository(client *redis.Client, key string) TaskRepository {
	return &redisTasks{
		client: client,
		key:    key,
	}
}

func (that *redisTasks) Load(ctx context.Context) ([]*entity.Task, error) {
	response, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return []*entity.Task{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	var tasks []*entity.Task
	if err = json.Unmarshal([]byte(response), &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return tasks, nil
}

func (that *redisTasks) Save(ctx context.Context, tasks []*entity.Task) error {
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("could not marshal tasks: %w", err)
	}

	if err = that.client.Set(ctx, that.key, tasksJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set tasks: %w", err)
	}

	return nil
}
