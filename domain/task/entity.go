package task

import "time"

// Status represents the state of a task. There is no enforced transition
// graph: any valid status may replace any other.
type Status string

const (
	StatusNew        Status = "New"
	StatusInprogress Status = "Inprogress"
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
)

// ValidStatuses lists every status a task may carry, in display order.
func ValidStatuses() []Status {
	return []Status{StatusNew, StatusInprogress, StatusPending, StatusCompleted}
}

// IsValid reports whether s is one of the allowed task statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInprogress, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// Task is a user-owned todo record. UserID is set at creation and never
// transferable.
type Task struct {
	ID          string `gorm:"primaryKey;type:text"`
	UserID      string `gorm:"index;not null;type:text"`
	Title       string `gorm:"not null;type:text"`
	Description string `gorm:"not null;type:text"`
	Status      Status `gorm:"not null;type:text"`
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
