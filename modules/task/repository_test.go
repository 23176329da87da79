package task

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/task-manager/domain/task"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestTask(userID string) *domain.Task {
	now := time.Now()
	return &domain.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       "Test task",
		Description: "Test description",
		Status:      domain.StatusNew,
		DueDate:     now.AddDate(0, 0, 7),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestTaskRepository_CreateAndFindOwned(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task := newTestTask("user-1")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("owner can fetch", func(t *testing.T) {
		found, err := repo.FindOwned("user-1", task.ID)
		if err != nil {
			t.Fatalf("FindOwned() error = %v", err)
		}
		if found.Title != task.Title {
			t.Errorf("found.Title = %q, want %q", found.Title, task.Title)
		}
	})

	t.Run("other user gets not found", func(t *testing.T) {
		_, err := repo.FindOwned("user-2", task.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindOwned() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing id gets not found", func(t *testing.T) {
		_, err := repo.FindOwned("user-1", uuid.New().String())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindOwned() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskRepository_FindByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	t.Run("no tasks yields empty slice", func(t *testing.T) {
		tasks, err := repo.FindByUser("user-1")
		if err != nil {
			t.Fatalf("FindByUser() error = %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("expected 0 tasks, got %d", len(tasks))
		}
	})

	for i := 0; i < 3; i++ {
		if err := repo.Create(newTestTask("user-1")); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if err := repo.Create(newTestTask("user-2")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("only owner's tasks", func(t *testing.T) {
		tasks, err := repo.FindByUser("user-1")
		if err != nil {
			t.Fatalf("FindByUser() error = %v", err)
		}
		if len(tasks) != 3 {
			t.Errorf("expected 3 tasks, got %d", len(tasks))
		}
		for _, task := range tasks {
			if task.UserID != "user-1" {
				t.Errorf("task %s owned by %q, want user-1", task.ID, task.UserID)
			}
		}
	})
}

func TestTaskRepository_UpdateByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task := newTestTask("user-1")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("update existing task", func(t *testing.T) {
		err := repo.UpdateByID(task.ID, map[string]any{
			"title":  "Renamed",
			"status": domain.StatusCompleted,
		})
		if err != nil {
			t.Fatalf("UpdateByID() error = %v", err)
		}

		found, err := repo.FindByID(task.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.Title != "Renamed" {
			t.Errorf("found.Title = %q, want %q", found.Title, "Renamed")
		}
		if found.Status != domain.StatusCompleted {
			t.Errorf("found.Status = %q, want %q", found.Status, domain.StatusCompleted)
		}
	})

	t.Run("update non-existent task", func(t *testing.T) {
		err := repo.UpdateByID(uuid.New().String(), map[string]any{"title": "x"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateByID() error = %v, want ErrNotFound", err)
		}
	})
}

func TestTaskRepository_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task := newTestTask("user-1")
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("delete existing task", func(t *testing.T) {
		if err := repo.DeleteByID(task.ID); err != nil {
			t.Fatalf("DeleteByID() error = %v", err)
		}
		if _, err := repo.FindByID(task.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete non-existent task", func(t *testing.T) {
		err := repo.DeleteByID(uuid.New().String())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteByID() error = %v, want ErrNotFound", err)
		}
	})
}
