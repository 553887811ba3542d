package models

import (
	"time"

	"grievance/internal/shared/constants"
)

// CategoryModel represents the database persistence model for concern categories
type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"size:500"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return constants.TableCategories
}

// OfficeModel represents the database persistence model for offices
type OfficeModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"size:500"`
	Email       string `gorm:"size:255"`
	Phone       string `gorm:"size:30"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (OfficeModel) TableName() string {
	return constants.TableOffices
}
