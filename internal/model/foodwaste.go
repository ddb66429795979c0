package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodWasteRecord is an append-only ledger entry. The ingredient name is
// free text, not a foreign key, so wasted items need not exist in the
// ingredient store. There are no update or delete paths.
type FoodWasteRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IngredientName string    `gorm:"size:255;not null" json:"ingredientName"`
	Quantity       float64   `gorm:"not null" json:"quantity"`
	Unit           string    `gorm:"size:50;not null" json:"unit"`
	Reason         string    `gorm:"size:255" json:"reason,omitempty"`
	WastedAt       time.Time `gorm:"not null;index" json:"wastedAt"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
}

func (r *FoodWasteRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.WastedAt.IsZero() {
		r.WastedAt = time.Now()
	}
	return nil
}
