package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"transit_companion/internal/config"
	"transit_companion/internal/models"
)

// newTestDB opens a fresh in-memory database per test. Max one open
// connection so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

var userSeq int

func registerUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	userSeq++
	user, err := NewUserService(db).Register(RegisterInput{
		Name:     fmt.Sprintf("User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}
