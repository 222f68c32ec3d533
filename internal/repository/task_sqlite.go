package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type sqliteTasks struct {
	conn *sql.DB
}

func NewSQLiteTaskRepository(conn *sql.DB) TaskRepository {
	return &sqliteTasks{
		conn: conn,
	}
}

func (that *sqliteTasks) Load(ctx context.Context) ([]*entity.Task, error) {
	query := `SELECT id, description, completed FROM tasks ORDER BY id`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't load tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*entity.Task{}
	for rows.Next() {
		var task entity.Task
		if err = rows.Scan(&task.ID, &task.Description, &task.Completed); err != nil {
			return nil, fmt.Errorf("can't scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate tasks: %w", err)
	}

	return tasks, nil
}

// Save - replaces every row inside one transaction.
func (that *sqliteTasks) Save(ctx context.Context, tasks []*entity.Task) error {
	tx, err := that.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("can't clear tasks: %w", err)
	}

	query := `INSERT INTO tasks (id, description, completed) VALUES (?, ?, ?)`
	for _, task := range tasks {
		if _, err = tx.ExecContext(ctx, query, task.ID, task.Description, task.Completed); err != nil {
			return fmt.Errorf("can't save task %d: %w", task.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit tasks: %w", err)
	}

	return nil
}
