package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// Fixed factors used to derive the dashboard figures from total waste.
const (
	unitPricePerKg  = 5.0
	co2FactorPerKg  = 2.5
	statsWindowDays = 30
)

// WasteStats are the derived figures over the trailing 30-day window. The
// money and CO2 values are display strings with two decimal places; they
// are computed per request and never stored.
type WasteStats struct {
	TotalWaste float64 `json:"totalWaste"`
	MoneySaved string  `json:"moneySaved"`
	CO2Reduced string  `json:"co2Reduced"`
	ItemsSaved int     `json:"itemsSaved"`
}

// FoodWasteService maintains the append-only waste ledger.
type FoodWasteService struct {
	db *gorm.DB
}

func NewFoodWasteService(db *gorm.DB) *FoodWasteService {
	return &FoodWasteService{db: db}
}

// Record appends an immutable waste record timestamped now.
func (s *FoodWasteService) Record(ctx context.Context, userID uuid.UUID, ingredientName string, quantity float64, unit, reason string) (*model.FoodWasteRecord, error) {
	record := model.FoodWasteRecord{
		IngredientName: ingredientName,
		Quantity:       quantity,
		Unit:           unit,
		Reason:         reason,
		WastedAt:       time.Now(),
		UserID:         userID,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// MonthlyStats returns the caller's records from the last 30 days,
// newest-first, together with the derived statistics.
func (s *FoodWasteService) MonthlyStats(ctx context.Context, userID uuid.UUID) ([]model.FoodWasteRecord, *WasteStats, error) {
	cutoff := time.Now().AddDate(0, 0, -statsWindowDays)

	var records []model.FoodWasteRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND wasted_at >= ?", userID, cutoff).
		Order("wasted_at DESC").
		Find(&records).Error; err != nil {
		return nil, nil, err
	}

	var total float64
	for _, r := range records {
		total += r.Quantity
	}

	stats := &WasteStats{
		TotalWaste: total,
		MoneySaved: fmt.Sprintf("%.2f", total*unitPricePerKg),
		CO2Reduced: fmt.Sprintf("%.2f", total*co2FactorPerKg),
		ItemsSaved: len(records),
	}
	return records, stats, nil
}
