package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is free text chosen by the UI, not enforced server-side.
type Ingredient struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   float64        `gorm:"not null" json:"quantity"`
	Unit       string         `gorm:"size:50;not null" json:"unit"`
	Category   string         `gorm:"size:50;not null" json:"category"`
	ExpiryDate *time.Time     `json:"expiryDate"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	User       *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
