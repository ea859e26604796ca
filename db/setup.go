package db

import (
	"github.com/simplify-dev/simplify/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the primary store. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
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
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
