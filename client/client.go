package client

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/example/task-manager/modules/task"
	"github.com/gofiber/fiber/v2"
)

// API is the surface the form and list components need. Client implements it.
type API interface {
	ListTasks() ([]task.TaskView, error)
	GetTask(taskID string) (*task.TaskView, error)
	CreateTask(payload TaskPayload) (*task.TaskView, error)
	UpdateTask(taskID string, payload TaskPayload) (*task.TaskView, error)
	DeleteTask(taskID string) error
}

// TaskPayload is the request body for task create and update calls.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status,omitempty"`
}

// User is the account payload returned by signup.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIError is a failure envelope returned by the server.
type APIError struct {
	StatusCode int
	Msg        string
}

func (e *APIError) Error() string {
	return e.Msg
}

// Client talks to the task manager REST API.
type Client struct {
	baseURL string
	token   string
}

// New creates a client for the given address or URL.
func New(addr string) *Client {
	baseURL := strings.TrimRight(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL}
}

// SetToken sets the bearer token sent with authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	return c.token
}

type envelope struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

type authResponse struct {
	envelope
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type taskResponse struct {
	envelope
	Task *task.TaskView `json:"task"`
}

type tasksResponse struct {
	envelope
	Tasks []task.TaskView `json:"tasks"`
}

// Signup registers a new account and returns the created user and token.
func (c *Client) Signup(name, email, password string) (*User, string, error) {
	var resp authResponse
	err := c.do(fiber.Post(c.baseURL+"/api/auth/signup").JSON(fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	}), &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(email, password string) (string, error) {
	var resp authResponse
	err := c.do(fiber.Post(c.baseURL+"/api/auth/login").JSON(fiber.Map{
		"email":    email,
		"password": password,
	}), &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Profile returns the authenticated caller's account.
func (c *Client) Profile() (*User, error) {
	var resp authResponse
	if err := c.do(fiber.Get(c.baseURL+"/api/profile"), &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// ListTasks returns the caller's tasks.
func (c *Client) ListTasks() ([]task.TaskView, error) {
	var resp tasksResponse
	if err := c.do(fiber.Get(c.baseURL+"/api/tasks"), &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// GetTask returns one of the caller's tasks by id.
func (c *Client) GetTask(taskID string) (*task.TaskView, error) {
	var resp taskResponse
	if err := c.do(fiber.Get(c.baseURL+"/api/tasks/"+taskID), &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// CreateTask persists a new task.
func (c *Client) CreateTask(payload TaskPayload) (*task.TaskView, error) {
	var resp taskResponse
	if err := c.do(fiber.Post(c.baseURL+"/api/tasks").JSON(payload), &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// UpdateTask applies field changes to a task.
func (c *Client) UpdateTask(taskID string, payload TaskPayload) (*task.TaskView, error) {
	var resp taskResponse
	if err := c.do(fiber.Put(c.baseURL+"/api/tasks/"+taskID).JSON(payload), &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(taskID string) error {
	var resp envelope
	return c.do(fiber.Delete(c.baseURL+"/api/tasks/"+taskID), &resp)
}

// do sends the prepared agent request and decodes the envelope response.
// A false status flag or a non-2xx code becomes an APIError carrying the
// server's message.
func (c *Client) do(agent *fiber.Agent, dest any) error {
	if c.token != "" {
		agent.Set("Authorization", "Bearer "+c.token)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errs[0])
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	if code >= 400 || !env.Status {
		msg := env.Msg
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", code)
		}
		return &APIError{StatusCode: code, Msg: msg}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}
