package models

import (
	"time"

	"grievance/internal/shared/constants"
)

// NotificationModel represents the database persistence model for notifications
type NotificationModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_notifications_user"`
	ConcernID *uint  `gorm:"index:idx_notifications_concern"`
	Type      string `gorm:"not null;size:30"`
	Title     string `gorm:"not null;size:255"`
	Message   string `gorm:"not null;type:text"`
	IsRead    bool   `gorm:"default:false;index:idx_notifications_read"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
