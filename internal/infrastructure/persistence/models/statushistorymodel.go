package models

import (
	"time"

	"grievance/internal/shared/constants"
)

// StatusHistoryModel persists the append-only concern audit trail.
type StatusHistoryModel struct {
	ID          uint    `gorm:"primarykey"`
	ConcernID   uint    `gorm:"not null;index:idx_status_history_concern"`
	OldStatus   *string `gorm:"size:20"`
	NewStatus   string  `gorm:"not null;size:20"`
	ChangedByID uint    `gorm:"not null"`
	Remarks     string  `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (StatusHistoryModel) TableName() string {
	return constants.TableStatusHistory
}
