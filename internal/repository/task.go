package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// TaskRepository - persists the whole to-do list at once.
type TaskRepository interface {
	Load(ctx context.Context) ([]*entity.Task, error)
	Save(ctx context.Context, tasks []*entity.Task) error
}
