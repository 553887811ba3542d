package concern

import (
	"fmt"
	"time"

	vo "grievance/internal/domain/concern/valueobjects"
)

type Concern struct {
	id              uint
	ticketNumber    string
	studentID       uint
	categoryID      uint
	otherCategory   string
	title           string
	description     string
	assignedOffice  *uint
	assignedAdmin   *uint
	status          vo.ConcernStatus
	priority        vo.Priority
	isAnonymous     bool
	location        string
	incidentDate    *time.Time
	attachments     []string
	resolutionNotes string
	resolvedBy      *uint
	resolvedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewConcern(
	studentID uint,
	categoryID uint,
	title string,
	description string,
	priority vo.Priority,
) (*Concern, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Concern{
		studentID:   studentID,
		categoryID:  categoryID,
		title:       title,
		description: description,
		status:      vo.StatusPending,
		priority:    priority,
		attachments: []string{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructConcern(
	id uint,
	ticketNumber string,
	studentID uint,
	categoryID uint,
	otherCategory string,
	title string,
	description string,
	assignedOffice *uint,
	assignedAdmin *uint,
	status vo.ConcernStatus,
	priority vo.Priority,
	isAnonymous bool,
	location string,
	incidentDate *time.Time,
	attachments []string,
	resolutionNotes string,
	resolvedBy *uint,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Concern, error) {
	if id == 0 {
		return nil, fmt.Errorf("concern ID cannot be zero")
	}
	if len(ticketNumber) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Concern{
		id:              id,
		ticketNumber:    ticketNumber,
		studentID:       studentID,
		categoryID:      categoryID,
		otherCategory:   otherCategory,
		title:           title,
		description:     description,
		assignedOffice:  assignedOffice,
		assignedAdmin:   assignedAdmin,
		status:          status,
		priority:        priority,
		isAnonymous:     isAnonymous,
		location:        location,
		incidentDate:    incidentDate,
		attachments:     attachments,
		resolutionNotes: resolutionNotes,
		resolvedBy:      resolvedBy,
		resolvedAt:      resolvedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (c *Concern) ID() uint {
	return c.id
}

func (c *Concern) TicketNumber() string {
	return c.ticketNumber
}

func (c *Concern) StudentID() uint {
	return c.studentID
}

func (c *Concern) CategoryID() uint {
	return c.categoryID
}

func (c *Concern) OtherCategory() string {
	return c.otherCategory
}

func (c *Concern) Title() string {
	return c.title
}

func (c *Concern) Description() string {
	return c.description
}

func (c *Concern) AssignedOfficeID() *uint {
	return c.assignedOffice
}

func (c *Concern) AssignedAdminID() *uint {
	return c.assignedAdmin
}

func (c *Concern) Status() vo.ConcernStatus {
	return c.status
}

func (c *Concern) Priority() vo.Priority {
	return c.priority
}

func (c *Concern) IsAnonymous() bool {
	return c.isAnonymous
}

func (c *Concern) Location() string {
	return c.location
}

func (c *Concern) IncidentDate() *time.Time {
	return c.incidentDate
}

func (c *Concern) Attachments() []string {
	attachmentsCopy := make([]string, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *Concern) ResolutionNotes() string {
	return c.resolutionNotes
}

func (c *Concern) ResolvedByID() *uint {
	return c.resolvedBy
}

func (c *Concern) ResolvedAt() *time.Time {
	return c.resolvedAt
}

func (c *Concern) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Concern) UpdatedAt() time.Time {
	return c.updatedAt
}

// GetOwnerID implements authorization.OwnedResource.
func (c *Concern) GetOwnerID() uint {
	return c.studentID
}

func (c *Concern) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("concern ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("concern ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Concern) SetTicketNumber(number string) error {
	if len(c.ticketNumber) > 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("ticket number cannot be empty")
	}
	c.ticketNumber = number
	return nil
}

func (c *Concern) SetOtherCategory(text string) {
	c.otherCategory = text
}

func (c *Concern) SetAnonymous(anonymous bool) {
	c.isAnonymous = anonymous
}

func (c *Concern) SetLocation(location string) {
	c.location = location
}

func (c *Concern) SetIncidentDate(date *time.Time) {
	c.incidentDate = date
}

func (c *Concern) SetInitialOffice(officeID uint) {
	if officeID != 0 {
		c.assignedOffice = &officeID
	}
}

func (c *Concern) AddAttachment(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("attachment path cannot be empty")
	}
	c.attachments = append(c.attachments, path)
	return nil
}

// ChangeStatus overwrites the status after an enum membership check. There is
// no transition graph: resolved, closed and rejected concerns can all be
// moved back to an earlier status.
func (c *Concern) ChangeStatus(newStatus vo.ConcernStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	c.status = newStatus
	c.updatedAt = time.Now()

	return nil
}

// AssignTo routes the concern to an office and records the acting admin.
// Assignment does not touch the status and is not part of the audited
// status trail.
func (c *Concern) AssignTo(officeID uint, adminID uint) error {
	if officeID == 0 {
		return fmt.Errorf("office ID cannot be zero")
	}
	if adminID == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}

	c.assignedOffice = &officeID
	c.assignedAdmin = &adminID
	c.updatedAt = time.Now()

	return nil
}

func (c *Concern) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	c.priority = newPriority
	c.updatedAt = time.Now()

	return nil
}

// Resolve marks the concern resolved regardless of its current status.
func (c *Concern) Resolve(adminID uint, resolutionNotes string) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	if len(resolutionNotes) == 0 {
		return fmt.Errorf("resolution notes are required")
	}

	now := time.Now()
	c.status = vo.StatusResolved
	c.resolutionNotes = resolutionNotes
	c.resolvedBy = &adminID
	c.resolvedAt = &now
	c.updatedAt = now

	return nil
}

func (c *Concern) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return c.studentID == userID
}

func (c *Concern) Validate() error {
	if c.studentID == 0 {
		return fmt.Errorf("student ID is required")
	}
	if c.categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if len(c.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(c.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !c.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if !c.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	return nil
}
