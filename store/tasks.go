// store/tasks.go - GORM-backed task store
package store

import (
	"errors"
	"strings"

	"taskhub/models"

	"gorm.io/gorm"
)

type GormTaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{db: db}
}

func (s *GormTaskStore) Create(task *models.Task) error {
	return translate(s.db.Create(task).Error)
}

func (s *GormTaskStore) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at ASC, comments.id ASC")
	}).First(&task, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (s *GormTaskStore) List(status *models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	query := s.db.Preload("Comments").Order("id ASC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&tasks).Error
	return tasks, translate(err)
}

// Search matches a case-insensitive substring against title or description.
func (s *GormTaskStore) Search(text string) ([]models.Task, error) {
	var tasks []models.Task
	pattern := "%" + strings.ToLower(text) + "%"
	err := s.db.Preload("Comments").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, translate(err)
}

func (s *GormTaskStore) ListByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.Preload("Comments").
		Where("assignee_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, translate(err)
}

func (s *GormTaskStore) Save(task *models.Task) error {
	return translate(s.db.Save(task).Error)
}

func (s *GormTaskStore) UpdateFields(id uint, fields map[string]interface{}) error {
	return translate(s.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error)
}

func (s *GormTaskStore) AddComment(comment *models.Comment) error {
	return translate(s.db.Create(comment).Error)
}

// Delete removes the task and its comments in one transaction.
func (s *GormTaskStore) Delete(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	}))
}

// translate maps GORM errors onto the store sentinels so callers never
// depend on the backend.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
