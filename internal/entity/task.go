package entity

import "fmt"

type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// String - formats the task the way `todo list` prints it.
func (that *Task) String() string {
	status := "[ ]"
	if that.Completed {
		status = "[x]"
	}

	return fmt.Sprintf("%s %d: %s", status, that.ID, that.Description)
}
