package application

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var (
	ErrMissingDescription = errors.New("task description is required")
	ErrInvalidTaskID      = errors.New("invalid task id")
)

// NewTodoApp - builds the `todo` command tree on top of the task use case.
func NewTodoApp(taskUseCase usecase.TaskUseCase, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "todo",
		Usage:     "manage a simple to-do list",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a new task",
				ArgsUsage: "<description>",
				Action: func(c *cli.Context) error {
					description := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
					if description == "" {
						return ErrMissingDescription
					}

					task, err := taskUseCase.Add(c.Context, description)
					if err != nil {
						return err
					}

					fmt.Fprintf(c.App.Writer, "Added task with ID: %d\n", task.ID)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List all tasks",
				Action: func(c *cli.Context) error {
					tasks, err := taskUseCase.List(c.Context)
					if err != nil {
						return err
					}

					if len(tasks) == 0 {
						fmt.Fprintln(c.App.Writer, "No tasks yet!")
						return nil
					}

					for _, task := range tasks {
						fmt.Fprintln(c.App.Writer, task.String())
					}
					return nil
				},
			},
			{
				Name:      "complete",
				Usage:     "Mark a task as complete",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := taskID(c)
					if err != nil {
						return err
					}

					if err = taskUseCase.Complete(c.Context, id); err != nil {
						return reportNotFound(c, id, err)
					}

					fmt.Fprintf(c.App.Writer, "Task %d marked as complete.\n", id)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "Remove a task",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					id, err := taskID(c)
					if err != nil {
						return err
					}

					if err = taskUseCase.Remove(c.Context, id); err != nil {
						return reportNotFound(c, id, err)
					}

					fmt.Fprintf(c.App.Writer, "Task %d removed.\n", id)
					return nil
				},
			},
		},
	}
}

func taskID(c *cli.Context) (int, error) {
	if c.Args().Len() != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", ErrInvalidTaskID)
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, c.Args().First())
	}

	return id, nil
}

// reportNotFound - prints the user-facing message for unknown ids, other errors pass through untouched.
func reportNotFound(c *cli.Context, id int, err error) error {
	if errors.Is(err, apperror.ErrTaskNotFound) {
		fmt.Fprintf(c.App.ErrWriter, "Error: Task with ID %d not found.\n", id)
	}

	return err
}
