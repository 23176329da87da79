package client

import (
	"time"

	"github.com/example/task-manager/modules/task"
	"github.com/example/task-manager/validation"
)

// DueDateLayout is the calendar date format used by form input.
const DueDateLayout = "2006-01-02"

// TaskForm holds a task draft being edited. A form with a task ID submits
// as an update, one without submits as a create.
type TaskForm struct {
	api    API
	onDone func()

	taskID      string
	title       string
	description string
	dueDate     string
	status      string

	loading bool
	errors  []validation.FieldError
}

// NewTaskForm creates an empty form for a new task. onDone is called after a
// successful submit and may be nil.
func NewTaskForm(api API, onDone func()) *TaskForm {
	return &TaskForm{api: api, onDone: onDone}
}

// NewEditForm creates a form prefilled from an existing task.
func NewEditForm(api API, t *task.TaskView, onDone func()) *TaskForm {
	f := &TaskForm{api: api, onDone: onDone}
	f.taskID = t.ID
	f.title = t.Title
	f.description = t.Description
	f.status = t.Status
	if !t.DueDate.IsZero() {
		f.dueDate = t.DueDate.Format(DueDateLayout)
	}
	return f
}

// SetField updates one draft field. A due date before today is dropped and
// the previous value kept. Unknown fields are ignored.
func (f *TaskForm) SetField(field, value string) {
	switch field {
	case "title":
		f.title = value
	case "description":
		f.description = value
	case "status":
		f.status = value
	case "dueDate":
		if value == "" {
			f.dueDate = ""
			return
		}
		due, err := time.Parse(DueDateLayout, value)
		if err != nil {
			return
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if due.Before(today) {
			return
		}
		f.dueDate = value
	}
}

// Field returns the current value of one draft field.
func (f *TaskForm) Field(field string) string {
	switch field {
	case "title":
		return f.title
	case "description":
		return f.description
	case "dueDate":
		return f.dueDate
	case "status":
		return f.status
	default:
		return ""
	}
}

// Errors returns the field errors from the last submit attempt.
func (f *TaskForm) Errors() []validation.FieldError {
	return f.errors
}

// Loading reports whether a submit is in flight.
func (f *TaskForm) Loading() bool {
	return f.loading
}

// Submit validates the draft and sends it to the API. Validation failures
// are recorded in Errors and no request is made. While a submit is in
// flight further submits are ignored.
func (f *TaskForm) Submit() error {
	if f.loading {
		return nil
	}

	f.errors = validation.ValidateMany(validation.GroupTask, map[string]string{
		"title":       f.title,
		"description": f.description,
		"dueDate":     f.dueDate,
	})
	if len(f.errors) > 0 {
		return nil
	}

	f.loading = true
	defer func() { f.loading = false }()

	payload := TaskPayload{
		Title:       f.title,
		Description: f.description,
		DueDate:     f.dueDate,
		Status:      f.status,
	}

	var err error
	if f.taskID == "" {
		_, err = f.api.CreateTask(payload)
	} else {
		_, err = f.api.UpdateTask(f.taskID, payload)
	}
	if err != nil {
		return err
	}

	if f.onDone != nil {
		f.onDone()
	}
	return nil
}
