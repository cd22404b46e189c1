package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dtkhuong/warbler/internal/database"
	"github.com/dtkhuong/warbler/internal/models"
)

// newTestDB opens a private in-memory sqlite database. The shared cache
// keeps the schema visible across the connections gorm pools.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		PwHash:   "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestMessage(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Message {
	t.Helper()
	message := &models.Message{Text: text, UserID: author.ID}
	require.NoError(t, db.Create(message).Error)
	return message
}
