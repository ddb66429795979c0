package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Household groups users that share a waste-reduction goal and ingredient
// visibility. Membership is a nullable foreign key on User, so a user can
// belong to at most one household.
type Household struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	JoinCode  string         `gorm:"size:8;uniqueIndex;not null" json:"joinCode"`
	WasteGoal float64        `gorm:"not null;default:10" json:"wasteGoal"`
	Members   []User         `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}

func (h *Household) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
