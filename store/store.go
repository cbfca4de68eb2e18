// store/store.go - Entity Store interfaces
package store

import (
	"errors"

	"taskhub/models"
)

// Sentinel errors every implementation translates its backend errors into.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	FindByEmails(emails []string) ([]models.User, error)
}

type TaskStore interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	List(status *models.TaskStatus) ([]models.Task, error)
	Search(text string) ([]models.Task, error)
	ListByAssignee(userID uint) ([]models.Task, error)
	Save(task *models.Task) error
	UpdateFields(id uint, fields map[string]interface{}) error
	AddComment(comment *models.Comment) error
	Delete(id uint) error
}

type TeamStore interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	Save(team *models.Team) error
}
