package dto

import (
	"time"

	"grievance/internal/domain/concern"
)

// ConcernDTO is the read model handed to the HTTP layer.
type ConcernDTO struct {
	ID              uint       `json:"id"`
	TicketNumber    string     `json:"ticket_number"`
	StudentID       uint       `json:"student_id"`
	CategoryID      uint       `json:"category_id"`
	OtherCategory   string     `json:"other_category,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	AssignedOffice  *uint      `json:"assigned_office,omitempty"`
	AssignedAdmin   *uint      `json:"assigned_admin,omitempty"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	IsAnonymous     bool       `json:"is_anonymous"`
	Location        string     `json:"location,omitempty"`
	IncidentDate    *time.Time `json:"incident_date,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	ResolvedBy      *uint      `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewConcernDTO maps the aggregate onto the read model.
func NewConcernDTO(c *concern.Concern) *ConcernDTO {
	return &ConcernDTO{
		ID:              c.ID(),
		TicketNumber:    c.TicketNumber(),
		StudentID:       c.StudentID(),
		CategoryID:      c.CategoryID(),
		OtherCategory:   c.OtherCategory(),
		Title:           c.Title(),
		Description:     c.Description(),
		AssignedOffice:  c.AssignedOfficeID(),
		AssignedAdmin:   c.AssignedAdminID(),
		Status:          c.Status().String(),
		Priority:        c.Priority().String(),
		IsAnonymous:     c.IsAnonymous(),
		Location:        c.Location(),
		IncidentDate:    c.IncidentDate(),
		Attachments:     c.Attachments(),
		ResolutionNotes: c.ResolutionNotes(),
		ResolvedBy:      c.ResolvedByID(),
		ResolvedAt:      c.ResolvedAt(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

// StatusHistoryDTO is one append-only history row.
type StatusHistoryDTO struct {
	ID        uint      `json:"id"`
	ConcernID uint      `json:"concern_id"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy uint      `json:"changed_by"`
	Remarks   string    `json:"remarks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStatusHistoryDTO(e *concern.StatusHistoryEntry) *StatusHistoryDTO {
	dto := &StatusHistoryDTO{
		ID:        e.ID(),
		ConcernID: e.ConcernID(),
		NewStatus: e.NewStatus().String(),
		ChangedBy: e.ChangedByID(),
		Remarks:   e.Remarks(),
		CreatedAt: e.CreatedAt(),
	}
	if old := e.OldStatus(); old != nil {
		s := old.String()
		dto.OldStatus = &s
	}
	return dto
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	ConcernID  uint      `json:"concern_id"`
	UserID     uint      `json:"user_id"`
	Text       string    `json:"text"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentDTO(c *concern.Comment) *CommentDTO {
	return &CommentDTO{
		ID:         c.ID(),
		ConcernID:  c.ConcernID(),
		UserID:     c.UserID(),
		Text:       c.Text(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}
