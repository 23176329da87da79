package api

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	taskdomain "github.com/example/task-manager/domain/task"
	domain "github.com/example/task-manager/domain/user"
	"github.com/example/task-manager/modules/auth"
	"github.com/example/task-manager/modules/task"
	"github.com/example/task-manager/validation"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/fiber/v2"
)

const invalidStatusMsg = "Invalid task status. Allowed values are: 'New', 'Inprogress', 'Pending', 'Completed'"

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authContainer mono.ServiceContainer
	authAdapter   auth.AuthPort
	taskPort      task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authContainer mono.ServiceContainer, authAdapter auth.AuthPort, taskPort task.TaskPort) *Handlers {
	return &Handlers{
		authContainer: authContainer,
		authAdapter:   authAdapter,
		taskPort:      taskPort,
	}
}

// Signup handles user registration.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var body SignupBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Invalid request body",
		})
	}

	authReq := auth.RegisterRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}
	var resp auth.RegisterResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.authContainer,
		"register",
		json.Marshal,
		json.Unmarshal,
		&authReq,
		&resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(SignupResponse{
		User: &UserPayload{
			ID:        resp.ID,
			Name:      resp.Name,
			Email:     resp.Email,
			CreatedAt: resp.CreatedAt,
		},
		Token:    resp.Token,
		Envelope: Envelope{Status: true, Msg: "Congratulations!! Account has been created for you.."},
	})
}

// Login handles user login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body LoginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Invalid request body",
		})
	}

	authReq := auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	}
	var resp auth.LoginResponse

	if err := helper.CallRequestReplyService(
		c.UserContext(),
		h.authContainer,
		"login",
		json.Marshal,
		json.Unmarshal,
		&authReq,
		&resp,
	); err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Token:    resp.Token,
		Envelope: Envelope{Status: true, Msg: "Login successful.."},
	})
}

// Profile returns the authenticated caller's account record.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	user, err := h.authAdapter.GetUser(c.UserContext(), claims.UserID)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ProfileResponse{
		User: &UserPayload{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Envelope: Envelope{Status: true, Msg: "Profile found successfully.."},
	})
}

// ListTasks returns all tasks owned by the caller.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	tasks, err := h.taskPort.List(c.UserContext(), claims.UserID)
	if err != nil {
		return internalError(c, err)
	}
	if tasks == nil {
		tasks = []task.TaskView{}
	}

	return c.Status(fiber.StatusOK).JSON(TasksResponse{
		Tasks:    tasks,
		Envelope: Envelope{Status: true, Msg: "Tasks found successfully.."},
	})
}

// GetTask returns one of the caller's tasks by id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	taskID := c.Params("taskId")
	if !validation.IsValidID(taskID) {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Task id not valid",
		})
	}

	found, err := h.taskPort.Get(c.UserContext(), claims.UserID, taskID)
	if err != nil {
		if strings.Contains(err.Error(), "task not found") {
			// The origin system reports an absent task as a 400, not a 404.
			return c.Status(fiber.StatusBadRequest).JSON(Envelope{
				Status: false,
				Msg:    "No task found..",
			})
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TaskResponse{
		Task:     found,
		Envelope: Envelope{Status: true, Msg: "Task found successfully.."},
	})
}

// CreateTask persists a new task owned by the caller.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Invalid request body",
		})
	}

	created, err := h.taskPort.Create(c.UserContext(), &task.CreateTaskRequest{
		UserID:      claims.UserID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     parseDueDate(body.DueDate),
	})
	if err != nil {
		return h.handleTaskError(c, err, "create")
	}

	return c.Status(fiber.StatusOK).JSON(TaskResponse{
		Task:     created,
		Envelope: Envelope{Status: true, Msg: "Task created successfully.."},
	})
}

// UpdateTask applies field changes to one of the caller's tasks.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Invalid request body",
		})
	}

	// Field checks come before the id check so a request that is wrong in
	// both ways reports the field problem first.
	due := parseDueDate(body.DueDate)
	if err := task.ValidateFields(body.Title, body.Description, taskdomain.Status(body.Status), due, false); err != nil {
		return h.handleTaskError(c, err, "update")
	}

	taskID := c.Params("taskId")
	if !validation.IsValidID(taskID) {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Task id not valid",
		})
	}

	updated, err := h.taskPort.Update(c.UserContext(), &task.UpdateTaskRequest{
		UserID:      claims.UserID,
		TaskID:      taskID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     due,
	})
	if err != nil {
		return h.handleTaskError(c, err, "update")
	}

	return c.Status(fiber.StatusOK).JSON(TaskResponse{
		Task:     updated,
		Envelope: Envelope{Status: true, Msg: "Task updated successfully.."},
	})
}

// DeleteTask removes one of the caller's tasks.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	claims := callerClaims(c)
	if claims == nil {
		return unauthenticated(c)
	}

	taskID := c.Params("taskId")
	if !validation.IsValidID(taskID) {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Task id not valid",
		})
	}

	if err := h.taskPort.Delete(c.UserContext(), claims.UserID, taskID); err != nil {
		return h.handleTaskError(c, err, "delete")
	}

	return c.Status(fiber.StatusOK).JSON(Envelope{
		Status: true,
		Msg:    "Task deleted successfully..",
	})
}

// handleAuthError maps auth service failures to envelope responses without
// exposing internals. Errors cross the service boundary as messages, so
// known failures are matched by text.
func (h *Handlers) handleAuthError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "Name is required"),
		strings.Contains(errStr, "Email is required"),
		strings.Contains(errStr, "Please enter valid email address"),
		strings.Contains(errStr, "Password is required"),
		strings.Contains(errStr, "Password should be atleast 8 chars long"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    lastServiceMessage(errStr),
		})
	case strings.Contains(errStr, "user with this email already exists"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "This email is already registered",
		})
	case strings.Contains(errStr, "invalid email or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(Envelope{
			Status: false,
			Msg:    "Invalid email or password",
		})
	default:
		return internalError(c, err)
	}
}

// handleTaskError maps task service failures to envelope responses. The
// action parameter selects the update/delete variant of the forbidden
// message.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error, action string) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "task title is required"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Please enter task title",
		})
	case strings.Contains(errStr, "task description is required"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Description of task not found",
		})
	case strings.Contains(errStr, "invalid task status"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    invalidStatusMsg,
		})
	case strings.Contains(errStr, "task due date is required"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Please enter task due date",
		})
	case strings.Contains(errStr, "task belongs to another user"):
		return c.Status(fiber.StatusForbidden).JSON(Envelope{
			Status: false,
			Msg:    "You can't " + action + " task of another user",
		})
	case strings.Contains(errStr, "task not found"):
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Status: false,
			Msg:    "Task with given id not found",
		})
	default:
		return internalError(c, err)
	}
}

// callerClaims returns the authenticated identity set by AuthMiddleware.
func callerClaims(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals(UserContextKey).(*domain.Claims)
	return claims
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(Envelope{
		Status: false,
		Msg:    "User not authenticated",
	})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Status: false,
		Msg:    "Internal Server Error",
	})
}

// parseDueDate accepts a plain calendar date or an RFC 3339 timestamp.
// Anything else reads as the zero time, which the field checks report as a
// missing due date after the title and description checks have run.
func parseDueDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// lastServiceMessage strips wrapping prefixes added while the error crossed
// the service boundary, keeping the user-facing message.
func lastServiceMessage(errStr string) string {
	if i := strings.LastIndex(errStr, ": "); i >= 0 {
		return errStr[i+2:]
	}
	return errStr
}
