package migration

import (
	"grievance/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every model the schema is derived from.
// Order matters for foreign key creation.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.OfficeModel{},
		&models.ConcernModel{},
		&models.StatusHistoryModel{},
		&models.CommentModel{},
		&models.NotificationModel{},
	}
}
