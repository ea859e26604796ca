package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/auth"
	"github.com/simplify-dev/simplify/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Milestone{},
		&models.Application{},
		&models.Assignment{},
		&models.Submission{},
		&models.Attachment{},
		&models.Course{},
		&models.GigBook{},
		&models.TrialProject{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return conn
}

func testIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func createUser(t *testing.T, conn *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		LoginID:      auth.NewLoginID(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, conn.Create(user).Error)
	return user
}

func createOrg(t *testing.T, conn *gorm.DB, name string) *models.User {
	return createUser(t, conn, name, name+"@org.test", models.RoleOrganization)
}

func createStudent(t *testing.T, conn *gorm.DB, name string) *models.User {
	return createUser(t, conn, name, name+"@student.test", models.RoleStudent)
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
