package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/domain/user"
	uservo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.ConcernModel{},
		&models.StatusHistoryModel{},
		&models.CommentModel{},
		&models.NotificationModel{},
		&models.CategoryModel{},
		&models.OfficeModel{},
	)
	require.NoError(t, err)

	return database
}

func newTestConcern(t *testing.T, studentID uint, title string) *concern.Concern {
	t.Helper()
	c, err := concern.NewConcern(studentID, 1, title, "Something needs attention", vo.PriorityNormal)
	require.NoError(t, err)
	return c
}

func newTestUser(t *testing.T, srCode, email string) *user.User {
	t.Helper()

	code, err := uservo.NewSRCode(srCode)
	require.NoError(t, err)
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)

	u, err := user.NewUser(code, addr, "Juan", "Dela Cruz", "BS Computer Science", 2)
	require.NoError(t, err)
	return u
}
