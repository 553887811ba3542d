package models

import (
	"time"

	"grievance/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                    uint    `gorm:"primarykey"`
	SRCode                string  `gorm:"column:sr_code;uniqueIndex;not null;size:10"`
	Email                 string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash          string  `gorm:"size:255"`
	FirstName             string  `gorm:"not null;size:100"`
	LastName              string  `gorm:"not null;size:100"`
	Program               string  `gorm:"size:100"`
	YearLevel             int     `gorm:"not null;default:1"`
	Role                  string  `gorm:"not null;default:student;size:20;index:idx_users_role"`
	GoogleID              *string `gorm:"size:64;index:idx_users_google_id"`
	EmailVerified         bool    `gorm:"default:false"`
	VerificationCode      *string `gorm:"size:10"`
	VerificationExpiresAt *time.Time
	IsActive              bool `gorm:"default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
