package model

import (
	"errors"
	"strings"
)

var (
	ErrEmptyText        = errors.New("model: task text is required")
	ErrTaskNotFound     = errors.New("model: task not found")
	ErrInvalidDueFormat = errors.New("model: invalid due format")
)

// Task is a single productivity task. Due holds the raw due string as entered so an
// unparseable value can still be shown; an empty Due means the task has no deadline.
type Task struct {
	ID        string
	Text      string
	Completed bool
	Due       string
	Alerted   bool
}

func (t Task) HasDue() bool {
	return strings.TrimSpace(t.Due) != ""
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	if t.Alerted && !t.HasDue() {
		return errors.New("model: alerted requires a due value")
	}
	return nil
}

// Counts is the aggregate projection of a task list.
type Counts struct {
	Completed int
	Total     int
}

func CountTasks(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	return c
}
