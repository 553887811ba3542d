package models

import (
	"time"

	"grievance/internal/shared/constants"
)

// CommentModel represents the database persistence model for concern comments
type CommentModel struct {
	ID         uint   `gorm:"primarykey"`
	ConcernID  uint   `gorm:"not null;index:idx_comments_concern"`
	UserID     uint   `gorm:"not null"`
	Text       string `gorm:"not null;type:text"`
	IsInternal bool   `gorm:"default:false"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return constants.TableComments
}
