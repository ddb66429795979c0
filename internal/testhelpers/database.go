package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/wastewise-v1/backend/internal/database"
	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// SetupTestDB creates an in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// CreateTestUser inserts a user with a fixed password hash.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
