package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/google/uuid"
)

var (
	// ErrTitleRequired is returned when a task has no title.
	ErrTitleRequired = errors.New("task title is required")
	// ErrDescriptionRequired is returned when a task has no description.
	ErrDescriptionRequired = errors.New("task description is required")
	// ErrInvalidStatus is returned when a task status is absent or outside the allowed set.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrDueDateRequired is returned when a task has no due date.
	ErrDueDateRequired = errors.New("task due date is required")
	// ErrNotOwner is returned when a caller tries to mutate another user's task.
	ErrNotOwner = errors.New("task belongs to another user")
)

// ValidateFields applies the task field rule set in its fixed order:
// title, description, status, due date. On create the status must be
// supplied and valid; on update (statusRequired false) it is checked only
// when present. A zero due date reads as missing.
func ValidateFields(title, description string, status domain.Status, dueDate time.Time, statusRequired bool) error {
	if title == "" {
		return ErrTitleRequired
	}
	if description == "" {
		return ErrDescriptionRequired
	}
	if statusRequired || status != "" {
		if !status.IsValid() {
			return ErrInvalidStatus
		}
	}
	if dueDate.IsZero() {
		return ErrDueDateRequired
	}
	return nil
}

// TaskService carries the ownership and validation rules for task
// operations. Every operation is scoped by the caller's user identity.
type TaskService struct {
	repo *TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all tasks owned by the given user. A user with no tasks gets
// an empty slice, not an error.
func (s *TaskService) List(_ context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.FindByUser(userID)
}

// Get returns the task only if it exists and is owned by the given user.
func (s *TaskService) Get(_ context.Context, userID, taskID string) (*domain.Task, error) {
	return s.repo.FindOwned(userID, taskID)
}

// Create validates the supplied fields and persists a new task owned by the
// caller. Status must be supplied explicitly; no default is substituted.
func (s *TaskService) Create(_ context.Context, userID, title, description string, status domain.Status, dueDate time.Time) (*domain.Task, error) {
	if err := ValidateFields(title, description, status, dueDate, true); err != nil {
		return nil, err
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update validates the supplied fields, checks that the caller owns the
// task, and applies the changes. Status is validated only when provided;
// an omitted status leaves the stored value unchanged.
//
// The lookup is deliberately unscoped and followed by an owner compare so
// that absent tasks and foreign tasks produce distinct errors, matching the
// system's observed behavior.
func (s *TaskService) Update(_ context.Context, userID, taskID, title, description string, status domain.Status, dueDate time.Time) (*domain.Task, error) {
	if err := ValidateFields(title, description, status, dueDate, false); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrNotOwner
	}

	now := time.Now()
	updates := map[string]any{
		"title":       title,
		"description": description,
		"due_date":    dueDate,
		"updated_at":  now,
	}
	if status != "" {
		updates["status"] = status
	}

	if err := s.repo.UpdateByID(taskID, updates); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload updated task: %w", err)
	}
	return updated, nil
}

// Delete checks that the caller owns the task, then removes it.
func (s *TaskService) Delete(_ context.Context, userID, taskID string) error {
	task, err := s.repo.FindByID(taskID)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.DeleteByID(taskID)
}
