package task

import (
	"context"
	"time"

	domain "github.com/example/task-manager/domain/task"
)

// TaskView is the wire representation of a task.
type TaskView struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListTasksRequest is the request for listing a user's tasks.
type ListTasksRequest struct {
	UserID string `json:"user_id"`
}

// ListTasksResponse is the response for listing a user's tasks.
type ListTasksResponse struct {
	Tasks []TaskView `json:"tasks"`
}

// GetTaskRequest is the request for fetching one owned task.
type GetTaskRequest struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
}

// UpdateTaskRequest is the request for updating a task.
type UpdateTaskRequest struct {
	UserID      string    `json:"user_id"`
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status,omitempty"`
	DueDate     time.Time `json:"due_date"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

// TaskPort defines the interface the HTTP layer uses to reach task
// operations. Every call is scoped by the authenticated user's identity.
type TaskPort interface {
	List(ctx context.Context, userID string) ([]TaskView, error)
	Get(ctx context.Context, userID, taskID string) (*TaskView, error)
	Create(ctx context.Context, req *CreateTaskRequest) (*TaskView, error)
	Update(ctx context.Context, req *UpdateTaskRequest) (*TaskView, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// toTaskView converts a domain Task to its wire representation.
func toTaskView(t *domain.Task) TaskView {
	return TaskView{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
