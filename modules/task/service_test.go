package task

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/google/uuid"
)

func setupTestService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(NewTaskRepository(setupTestDB(t)))
}

func dueDate() time.Time {
	return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestTaskService_CreateAndGet(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "T", "D", domain.StatusNew, dueDate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Round-trip: fetching by the returned id yields identical field values
	// and a non-empty timestamp pair.
	found, err := svc.Get(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found.Title != "T" || found.Description != "D" {
		t.Errorf("got (%q, %q), want (T, D)", found.Title, found.Description)
	}
	if found.Status != domain.StatusNew {
		t.Errorf("found.Status = %q, want %q", found.Status, domain.StatusNew)
	}
	if !found.DueDate.Equal(dueDate()) {
		t.Errorf("found.DueDate = %v, want %v", found.DueDate, dueDate())
	}
	if found.CreatedAt.IsZero() || found.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on creation")
	}
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		title       string
		description string
		status      domain.Status
		due         time.Time
		wantErr     error
	}{
		{
			name:        "missing title",
			title:       "",
			description: "D",
			status:      domain.StatusNew,
			due:         dueDate(),
			wantErr:     ErrTitleRequired,
		},
		{
			name:        "missing description",
			title:       "T",
			description: "",
			status:      domain.StatusNew,
			due:         dueDate(),
			wantErr:     ErrDescriptionRequired,
		},
		{
			name:        "missing status gets no default",
			title:       "T",
			description: "D",
			status:      "",
			due:         dueDate(),
			wantErr:     ErrInvalidStatus,
		},
		{
			name:        "status outside allowed set",
			title:       "T",
			description: "D",
			status:      "Archived",
			due:         dueDate(),
			wantErr:     ErrInvalidStatus,
		},
		{
			name:        "missing due date",
			title:       "T",
			description: "D",
			status:      domain.StatusNew,
			due:         time.Time{},
			wantErr:     ErrDueDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", tt.title, tt.description, tt.status, tt.due)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Nothing was persisted by the rejected creates.
	tasks, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks after rejected creates, got %d", len(tasks))
	}
}

func TestTaskService_List(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("empty list is not an error", func(t *testing.T) {
		tasks, err := svc.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected empty list, got %d tasks", len(tasks))
		}
	})

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, "user-1", "T", "D", domain.StatusNew, dueDate()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if _, err := svc.Create(ctx, "user-2", "T", "D", domain.StatusNew, dueDate()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("scoped to owner", func(t *testing.T) {
		tasks, err := svc.List(ctx, "user-1")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(tasks))
		}
	})
}

func TestTaskService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "T", "D", domain.StatusNew, dueDate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("owner updates fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, "user-1", created.ID, "T2", "D2", domain.StatusInprogress, dueDate())
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Title != "T2" || updated.Description != "D2" {
			t.Errorf("got (%q, %q), want (T2, D2)", updated.Title, updated.Description)
		}
		if updated.Status != domain.StatusInprogress {
			t.Errorf("updated.Status = %q, want %q", updated.Status, domain.StatusInprogress)
		}
	})

	t.Run("omitted status leaves stored value unchanged", func(t *testing.T) {
		updated, err := svc.Update(ctx, "user-1", created.ID, "T3", "D3", "", dueDate())
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if updated.Status != domain.StatusInprogress {
			t.Errorf("updated.Status = %q, want unchanged %q", updated.Status, domain.StatusInprogress)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, "user-1", created.ID, "T", "D", "Archived", dueDate())
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("Update() error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.Update(ctx, "user-1", uuid.New().String(), "T", "D", domain.StatusNew, dueDate())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("another user is forbidden and storage unchanged", func(t *testing.T) {
		_, err := svc.Update(ctx, "user-2", created.ID, "Hijacked", "Hijacked", domain.StatusCompleted, dueDate())
		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("Update() error = %v, want ErrNotOwner", err)
		}

		found, err := svc.Get(ctx, "user-1", created.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if found.Title == "Hijacked" {
			t.Error("forbidden update must not change storage")
		}
	})
}

func TestTaskService_Delete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", "T", "D", domain.StatusNew, dueDate())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("another user is forbidden and storage unchanged", func(t *testing.T) {
		err := svc.Delete(ctx, "user-2", created.ID)
		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("Delete() error = %v, want ErrNotOwner", err)
		}
		if _, err := svc.Get(ctx, "user-1", created.ID); err != nil {
			t.Errorf("task should still exist after forbidden delete: %v", err)
		}
	})

	t.Run("well-formed but absent id", func(t *testing.T) {
		err := svc.Delete(ctx, "user-1", uuid.New().String())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		if err := svc.Delete(ctx, "user-1", created.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := svc.Get(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
		}
	})
}
