// store/users.go - GORM-backed user store
package store

import (
	"taskhub/models"

	"gorm.io/gorm"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormUserStore) FindByEmails(emails []string) ([]models.User, error) {
	var users []models.User
	err := s.db.Where("email IN ?", emails).Find(&users).Error
	return users, translate(err)
}
