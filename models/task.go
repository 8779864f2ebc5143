package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// DueDateLayout is the wire format for due dates (date only, no time part).
const DueDateLayout = "2006-01-02"

type Task struct {
	ID          uuid.UUID
	Title       string
	Description string       // empty means absent
	Status      TaskStatus
	Priority    TaskPriority // empty means unset
	DueDate     *time.Time   // date only, nil means unset
	CreatedAt   time.Time
}

// ParseStatus validates a wire token against the closed status enum.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskStatusTodo:
		return TaskStatusTodo, nil
	case TaskStatusInProgress:
		return TaskStatusInProgress, nil
	case TaskStatusDone:
		return TaskStatusDone, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// ParsePriority validates a wire token against the closed priority enum.
func ParsePriority(s string) (TaskPriority, error) {
	switch TaskPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case TaskPriorityLow:
		return TaskPriorityLow, nil
	case TaskPriorityMedium:
		return TaskPriorityMedium, nil
	case TaskPriorityHigh:
		return TaskPriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// ParseDueDate parses a YYYY-MM-DD date, normalized to midnight UTC.
func ParseDueDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DueDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date must be YYYY-MM-DD: %q", s)
	}
	return t, nil
}
