package api

import (
	"time"

	"github.com/example/task-manager/modules/task"
)

// Envelope is the response wrapper every endpoint returns. Payload fields
// sit alongside it in the concrete response types.
type Envelope struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

// SignupBody is the request body for POST /api/auth/signup.
type SignupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginBody is the request body for POST /api/auth/login.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskBody is the request body for creating or updating a task. DueDate is
// a date string ("2006-01-02" or RFC 3339).
type TaskBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// UserPayload is the user record returned from signup.
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupResponse is the response for POST /api/auth/signup.
type SignupResponse struct {
	User  *UserPayload `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
	Envelope
}

// LoginResponse is the response for POST /api/auth/login.
type LoginResponse struct {
	Token string `json:"token,omitempty"`
	Envelope
}

// ProfileResponse is the response for GET /api/profile.
type ProfileResponse struct {
	User *UserPayload `json:"user,omitempty"`
	Envelope
}

// TaskResponse is the response carrying a single task.
type TaskResponse struct {
	Task *task.TaskView `json:"task,omitempty"`
	Envelope
}

// TasksResponse is the response for GET /api/tasks.
type TasksResponse struct {
	Tasks []task.TaskView `json:"tasks"`
	Envelope
}
