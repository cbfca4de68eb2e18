// store/teams.go - GORM-backed team store
package store

import (
	"taskhub/models"

	"gorm.io/gorm"
)

type GormTeamStore struct {
	db *gorm.DB
}

func NewTeamStore(db *gorm.DB) *GormTeamStore {
	return &GormTeamStore{db: db}
}

func (s *GormTeamStore) Create(team *models.Team) error {
	return translate(s.db.Create(team).Error)
}

func (s *GormTeamStore) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *GormTeamStore) Save(team *models.Team) error {
	return translate(s.db.Save(team).Error)
}
