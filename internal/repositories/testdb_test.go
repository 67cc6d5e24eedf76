package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/warblr-social/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing. Foreign
// keys are switched on so cascade and referential-integrity behavior matches
// the PostgreSQL schema, and TranslateError maps constraint failures onto
// the same gorm sentinels the repositories see in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// A fresh :memory: database exists per connection; pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err, "failed to get sql.DB")
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}
