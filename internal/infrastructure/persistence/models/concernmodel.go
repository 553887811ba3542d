package models

import (
	"time"

	"gorm.io/datatypes"

	"grievance/internal/shared/constants"
)

// ConcernModel represents the database persistence model for concerns
type ConcernModel struct {
	ID               uint   `gorm:"primarykey"`
	TicketNumber     string `gorm:"uniqueIndex;not null;size:20"`
	StudentID        uint   `gorm:"not null;index:idx_concerns_student"`
	CategoryID       uint   `gorm:"not null;index:idx_concerns_category"`
	OtherCategory    string `gorm:"size:255"`
	Title            string `gorm:"not null;size:255"`
	Description      string `gorm:"not null;type:text"`
	AssignedOfficeID *uint  `gorm:"index:idx_concerns_office"`
	AssignedAdminID  *uint  `gorm:"index:idx_concerns_admin"`
	Status           string `gorm:"not null;default:pending;size:20;index:idx_concerns_status"`
	Priority         string `gorm:"not null;default:normal;size:20;index:idx_concerns_priority"`
	IsAnonymous      bool   `gorm:"default:false"`
	Location         string `gorm:"size:255"`
	IncidentDate     *time.Time
	Attachments      datatypes.JSON `gorm:"type:json"`
	ResolutionNotes  string         `gorm:"type:text"`
	ResolvedByID     *uint
	ResolvedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (ConcernModel) TableName() string {
	return constants.TableConcerns
}
