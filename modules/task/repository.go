package task

import (
	"errors"
	"fmt"

	domain "github.com/example/task-manager/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// TaskRepository handles task persistence using GORM.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create saves a new task to the database.
func (r *TaskRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByUser retrieves all tasks owned by the given user, in storage order.
func (r *TaskRepository) FindByUser(userID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.Find(&tasks, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// FindOwned retrieves a task only if it exists and is owned by the given
// user. The ownership condition is part of the query so the lookup never
// reveals whether another user's task exists.
func (r *TaskRepository) FindOwned(userID, taskID string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ? AND user_id = ?", taskID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindByID retrieves a task by ID regardless of owner.
func (r *TaskRepository) FindByID(taskID string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// UpdateByID applies the given column updates to a task. Ownership is not
// checked here; the caller enforces it first.
func (r *TaskRepository) UpdateByID(taskID string, updates map[string]any) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", taskID).Updates(updates)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a task by ID. Ownership is not checked here; the
// caller enforces it first.
func (r *TaskRepository) DeleteByID(taskID string) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", taskID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
