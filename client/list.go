package client

import (
	"sort"
	"strings"

	domain "github.com/example/task-manager/domain/task"
	"github.com/example/task-manager/modules/task"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle = map[string]lipgloss.Style{
		string(domain.StatusNew):        lipgloss.NewStyle(),
		string(domain.StatusPending):    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		string(domain.StatusInprogress): lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		string(domain.StatusCompleted):  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

// TaskList is the caller's task collection, newest first.
type TaskList struct {
	api   API
	tasks []task.TaskView
}

// NewTaskList creates an empty list backed by the given API.
func NewTaskList(api API) *TaskList {
	return &TaskList{api: api}
}

// Fetch reloads the list from the API, ordered newest first by creation
// time.
func (l *TaskList) Fetch() error {
	tasks, err := l.api.ListTasks()
	if err != nil {
		return err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	l.tasks = tasks
	return nil
}

// Tasks returns the fetched tasks.
func (l *TaskList) Tasks() []task.TaskView {
	return l.tasks
}

// Delete removes a task and reloads the list.
func (l *TaskList) Delete(taskID string) error {
	if err := l.api.DeleteTask(taskID); err != nil {
		return err
	}
	return l.Fetch()
}

// Render returns the list as styled text rows.
func (l *TaskList) Render() string {
	if len(l.tasks) == 0 {
		return mutedStyle.Render("No tasks found")
	}

	var b strings.Builder
	for i, t := range l.tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(&t))
	}
	return b.String()
}

func renderRow(t *task.TaskView) string {
	style, ok := statusStyle[t.Status]
	if !ok {
		style = lipgloss.NewStyle()
	}

	parts := []string{
		mutedStyle.Render(t.ID),
		titleStyle.Render(t.Title),
		style.Render(t.Status),
	}
	if !t.DueDate.IsZero() {
		parts = append(parts, mutedStyle.Render("due "+t.DueDate.Format(DueDateLayout)))
	}
	return strings.Join(parts, "  ")
}
