package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const filePerm = 0o644

type fileTasks struct {
	path string
}

// NewFileTaskRepository - stores the list as a pretty-printed JSON array in a single file.
func NewFileTaskRepository(path string) TaskRepository {
	return &fileTasks{
		path: path,
	}
}

func (that *fileTasks) Load(ctx context.Context) ([]*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(that.path, os.O_RDWR|os.O_CREATE, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", that.path, err)
	}
	defer file.Close()

	var tasks []*entity.Task

	err = json.NewDecoder(file).Decode(&tasks)
	if errors.Is(err, io.EOF) {
		return []*entity.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", that.path, err)
	}

	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return tasks, nil
}

// Save - truncates the file and rewrites the whole list.
func (that *fileTasks) Save(ctx context.Context, tasks []*entity.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if tasks == nil {
		tasks = []*entity.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal tasks: %w", err)
	}

	file, err := os.OpenFile(that.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", that.path, err)
	}

	if _, err = file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", that.path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", that.path, err)
	}

	return nil
}
