package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskAdapter implements TaskPort using the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

// Compile-time interface check.
var _ TaskPort = (*TaskAdapter)(nil)

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{
		container: container,
	}
}

// List returns all tasks owned by the given user.
func (a *TaskAdapter) List(ctx context.Context, userID string) ([]TaskView, error) {
	req := ListTasksRequest{UserID: userID}
	var resp ListTasksResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-tasks",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("list-tasks request failed: %w", err)
	}
	return resp.Tasks, nil
}

// Get returns one task owned by the given user.
func (a *TaskAdapter) Get(ctx context.Context, userID, taskID string) (*TaskView, error) {
	req := GetTaskRequest{UserID: userID, TaskID: taskID}
	var resp TaskView

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create persists a new task owned by the caller.
func (a *TaskAdapter) Create(ctx context.Context, req *CreateTaskRequest) (*TaskView, error) {
	var resp TaskView

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"create-task",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update applies field changes to a task owned by the caller.
func (a *TaskAdapter) Update(ctx context.Context, req *UpdateTaskRequest) (*TaskView, error) {
	var resp TaskView

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"update-task",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a task owned by the caller.
func (a *TaskAdapter) Delete(ctx context.Context, userID, taskID string) error {
	req := DeleteTaskRequest{UserID: userID, TaskID: taskID}
	var resp DeleteTaskResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"delete-task",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return err
	}
	return nil
}
