package model

import "time"

type EventKind string

const (
	EventTaskAdded     EventKind = "task-added"
	EventTaskCompleted EventKind = "task-completed"
	EventTaskDue       EventKind = "task-due"
)

func (k EventKind) IsValid() bool {
	switch k {
	case EventTaskAdded, EventTaskCompleted, EventTaskDue:
		return true
	default:
		return false
	}
}

// Event is a one-shot notification produced by a garden operation.
type Event struct {
	Kind   EventKind
	TaskID string
	Text   string
	At     time.Time
}
