// models/task.go
package models

import "time"

type TaskStatus string

const (
	TaskStatusOpen   TaskStatus = "open"
	TaskStatusClosed TaskStatus = "closed"
)

// Valid reports whether s is one of the two recognized statuses.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusOpen || s == TaskStatusClosed
}

// Task is the central tracked entity. DueDate holds the dd/mm/yyyy string
// exactly as supplied so day/month/year round-trip without normalization.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"uniqueIndex;not null;size:100"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Status      TaskStatus `json:"status" gorm:"not null;size:10"`
	DueDate     string     `json:"due_date" gorm:"size:10"`
	AssigneeID  *uint      `json:"assignee_id" gorm:"index"`
	Assignee    *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Comments    []Comment  `json:"comments" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Comment is append-only and lives exactly as long as its parent task.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TaskID    uint      `json:"task_id" gorm:"not null;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
