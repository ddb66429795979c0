package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// IngredientService handles ingredient CRUD scoped to the caller and, for
// listing, to the caller's household.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List returns ingredients newest-first. Inside a household the result is
// the union over every member's ingredients; otherwise just the caller's.
// The owning user is preloaded either way so the handler can annotate rows.
func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]model.Ingredient, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Preload("User").Order("ingredients.created_at DESC")
	if user.HouseholdID != nil {
		query = query.
			Joins("JOIN users ON users.id = ingredients.user_id").
			Where("users.household_id = ?", *user.HouseholdID)
	} else {
		query = query.Where("ingredients.user_id = ?", userID)
	}

	var ingredients []model.Ingredient
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Add creates an ingredient owned by the caller.
func (s *IngredientService) Add(ctx context.Context, userID uuid.UUID, name string, quantity float64, unit, category string, expiryDate *time.Time) (*model.Ingredient, error) {
	ingredient := model.Ingredient{
		Name:       name,
		Quantity:   quantity,
		Unit:       unit,
		Category:   category,
		ExpiryDate: expiryDate,
		UserID:     userID,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Remove deletes an ingredient only if the caller owns it. A foreign or
// unknown id deletes nothing and reports ErrIngredientNotFound.
func (s *IngredientService) Remove(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIngredientNotFound
	}
	return nil
}
