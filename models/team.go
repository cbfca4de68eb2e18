// models/team.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type Team struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Description string        `json:"description" gorm:"type:text"`
	MemberIDs   pq.Int64Array `json:"member_ids" gorm:"type:bigint[]"`
	CreatedBy   uint          `json:"created_by" gorm:"not null"`
	Creator     *User         `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Team) TableName() string {
	return "teams"
}

// OwnerID reports the user allowed to mutate the team. CreatedBy never
// changes after creation.
func (t *Team) OwnerID() uint {
	return t.CreatedBy
}
