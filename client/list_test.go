package client

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/task-manager/modules/task"
)

func TestTaskListFetch(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	api := &mockAPI{
		listFunc: func() ([]task.TaskView, error) {
			return []task.TaskView{
				{ID: "oldest", CreatedAt: base},
				{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
				{ID: "middle", CreatedAt: base.Add(time.Hour)},
			}, nil
		},
	}

	list := NewTaskList(api)
	if err := list.Fetch(); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	tasks := list.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if tasks[i].ID != want {
			t.Errorf("tasks[%d].ID = %q, want %q", i, tasks[i].ID, want)
		}
	}
}

func TestTaskListDelete(t *testing.T) {
	t.Run("refetches after delete", func(t *testing.T) {
		remaining := []task.TaskView{{ID: "keep"}}
		var deleted string
		api := &mockAPI{
			deleteFunc: func(taskID string) error {
				deleted = taskID
				return nil
			},
			listFunc: func() ([]task.TaskView, error) {
				return remaining, nil
			},
		}

		list := NewTaskList(api)
		if err := list.Delete("gone"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if deleted != "gone" {
			t.Errorf("deleted = %q, want gone", deleted)
		}
		if len(list.Tasks()) != 1 || list.Tasks()[0].ID != "keep" {
			t.Errorf("Tasks() = %v, want the refetched list", list.Tasks())
		}
	})

	t.Run("delete failure leaves the list alone", func(t *testing.T) {
		api := &mockAPI{
			deleteFunc: func(taskID string) error {
				return errors.New("boom")
			},
		}

		list := NewTaskList(api)
		list.tasks = []task.TaskView{{ID: "kept"}}

		if err := list.Delete("kept"); err == nil {
			t.Fatal("Delete() error = nil, want failure")
		}
		if len(list.Tasks()) != 1 {
			t.Errorf("Tasks() = %v, want unchanged", list.Tasks())
		}
	})
}

func TestTaskListRender(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		list := NewTaskList(&mockAPI{})
		if !strings.Contains(list.Render(), "No tasks found") {
			t.Errorf("Render() = %q", list.Render())
		}
	})

	t.Run("one row per task", func(t *testing.T) {
		list := NewTaskList(&mockAPI{})
		list.tasks = []task.TaskView{
			{ID: "a", Title: "First", Status: "New", DueDate: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "b", Title: "Second", Status: "Completed"},
		}

		out := list.Render()
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("Render() produced %d lines, want 2", len(lines))
		}
		if !strings.Contains(lines[0], "First") || !strings.Contains(lines[0], "due 2030-01-02") {
			t.Errorf("lines[0] = %q", lines[0])
		}
		if !strings.Contains(lines[1], "Second") || strings.Contains(lines[1], "due ") {
			t.Errorf("lines[1] = %q", lines[1])
		}
	})
}
