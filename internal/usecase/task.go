package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type TaskUseCase interface {
	Add(ctx context.Context, description string) (*entity.Task, error)
	List(ctx context.Context) ([]*entity.Task, error)
	Complete(ctx context.Context, id int) error
	Remove(ctx context.Context, id int) error
}

type taskRepoDep interface {
	Load(ctx context.Context) ([]*entity.Task, error)
	Save(ctx context.Context, tasks []*entity.Task) error
}

type taskUseCase struct {
	logger   *slog.Logger
	taskRepo taskRepoDep
}

func NewTaskUseCase(logger *slog.Logger, taskRepo taskRepoDep) TaskUseCase {
	return &taskUseCase{
		logger:   logger.With("component", "todo"),
		taskRepo: taskRepo,
	}
}

// Add - appends a task with the id following the last one in the list.
func (that *taskUseCase) Add(ctx context.Context, description string) (*entity.Task, error) {
	tasks, err := that.taskRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	id := 1
	if len(tasks) > 0 {
		id = tasks[len(tasks)-1].ID + 1
	}

	task := &entity.Task{ID: id, Description: description}
	tasks = append(tasks, task)

	if err = that.taskRepo.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}

	that.logger.Debug("task added", "id", id)

	return task, nil
}

func (that *taskUseCase) List(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := that.taskRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return tasks, nil
}

func (that *taskUseCase) Complete(ctx context.Context, id int) error {
	tasks, err := that.taskRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	var found *entity.Task
	for _, task := range tasks {
		if task.ID == id {
			found = task
			break
		}
	}

	if found == nil {
		return fmt.Errorf("%w: id %d", apperror.ErrTaskNotFound, id)
	}

	found.Completed = true

	if err = that.taskRepo.Save(ctx, tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	that.logger.Debug("task completed", "id", id)

	return nil
}

func (that *taskUseCase) Remove(ctx context.Context, id int) error {
	tasks, err := that.taskRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	kept := make([]*entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}

	if len(kept) == len(tasks) {
		return fmt.Errorf("%w: id %d", apperror.ErrTaskNotFound, id)
	}

	if err = that.taskRepo.Save(ctx, kept); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	that.logger.Debug("task removed", "id", id)

	return nil
}
