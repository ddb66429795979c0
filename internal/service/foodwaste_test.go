package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/wastewise-v1/backend/internal/model"
	"github.com/pageza/wastewise-v1/backend/internal/testhelpers"
)

func TestRecordWaste(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFoodWasteService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com")

	record, err := svc.Record(context.Background(), user.ID, "Lettuce", 0.3, "kg", "expired")
	require.NoError(t, err)

	assert.Equal(t, "Lettuce", record.IngredientName)
	assert.Equal(t, 0.3, record.Quantity)
	assert.Equal(t, "expired", record.Reason)
	assert.WithinDuration(t, time.Now(), record.WastedAt, time.Minute)
}

func TestMonthlyStats(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFoodWasteService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com")

	now := time.Now()
	inWindow := []model.FoodWasteRecord{
		{IngredientName: "Bread", Quantity: 2, Unit: "kg", WastedAt: now.Add(-48 * time.Hour), UserID: user.ID},
		{IngredientName: "Cheese", Quantity: 3.5, Unit: "kg", WastedAt: now.Add(-24 * time.Hour), UserID: user.ID},
	}
	for i := range inWindow {
		require.NoError(t, db.Create(&inWindow[i]).Error)
	}
	// Outside the 30-day window, must not count.
	old := model.FoodWasteRecord{IngredientName: "Apples", Quantity: 100, Unit: "kg", WastedAt: now.AddDate(0, 0, -40), UserID: user.ID}
	require.NoError(t, db.Create(&old).Error)

	records, stats, err := svc.MonthlyStats(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "Cheese", records[0].IngredientName, "newest record comes first")

	assert.Equal(t, 5.5, stats.TotalWaste)
	assert.Equal(t, "27.50", stats.MoneySaved)
	assert.Equal(t, "13.75", stats.CO2Reduced)
	assert.Equal(t, 2, stats.ItemsSaved)
}

func TestMonthlyStatsScopedToUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFoodWasteService(db)
	alice := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com")
	bob := testhelpers.CreateTestUser(t, db, "Bob", "bob@example.com")

	_, err := svc.Record(context.Background(), alice.ID, "Lettuce", 1, "kg", "")
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), bob.ID, "Bread", 2, "kg", "")
	require.NoError(t, err)

	records, stats, err := svc.MonthlyStats(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1.0, stats.TotalWaste)
	assert.Equal(t, 1, stats.ItemsSaved)
}

func TestMonthlyStatsEmpty(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewFoodWasteService(db)
	user := testhelpers.CreateTestUser(t, db, "Alice", "alice@example.com")

	records, stats, err := svc.MonthlyStats(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0.0, stats.TotalWaste)
	assert.Equal(t, "0.00", stats.MoneySaved)
	assert.Equal(t, "0.00", stats.CO2Reduced)
	assert.Equal(t, 0, stats.ItemsSaved)
}
