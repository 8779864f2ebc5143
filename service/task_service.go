package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskmanager/db"
	"taskmanager/models"
)

// TaskInput is a validated payload for create and update. Callers are
// expected to have run the parse step already: title is non-blank and
// status is a member of the enum on entry.
type TaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
}

// ListFilter narrows List results. Zero values mean filter not applied.
type ListFilter struct {
	Status    models.TaskStatus
	Priority  models.TaskPriority
	DueBefore *time.Time
}

func (f ListFilter) matches(task *models.Task) bool {
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	// tasks without a priority never match a priority filter
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	// tasks without a due date never match dueBefore; the bound is strict
	if f.DueBefore != nil {
		if task.DueDate == nil || !task.DueDate.Before(*f.DueBefore) {
			return false
		}
	}
	return true
}

type TaskService struct {
	repo db.TaskRepositoryInterface
}

func NewTaskService(repo db.TaskRepositoryInterface) *TaskService {
	return &TaskService{repo: repo}
}

// Create persists a new task, assigning the id and creation timestamp.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// List reads the full collection and applies the filters as independent
// conjunctive predicates. No filters returns every task. Order follows
// the store (creation time, id as tiebreak).
func (s *TaskService) List(ctx context.Context, filter ListFilter) ([]*models.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	matched := []*models.Task{}
	for _, task := range tasks {
		if filter.matches(task) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// Update replaces every mutable field with the payload's values. The id
// and creation timestamp are copied forward untouched.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input TaskInput) (*models.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := s.repo.Update(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id.String()}
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the task permanently and returns the removed record.
// There is no soft delete.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id.String()}
		}
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return task, nil
}
