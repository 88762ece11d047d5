package services

import (
	"testing"
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database. The pool
// is pinned to one connection because every :memory: connection is its own
// database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.HydrationEntry{},
		&models.MeditationSession{},
		&models.ScheduleEvent{},
	))

	config.DB = db
	config.SetLocation(time.UTC)
	t.Cleanup(func() {
		config.SetLocation(time.Local)
	})
}

// setNow pins the service clock for the duration of the test.
func setNow(t *testing.T, now time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() {
		nowFunc = old
	})
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}
