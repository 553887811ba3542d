package concern

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/concern/usecases"
	"grievance/internal/shared/errors"
)

type CreateConcernRequest struct {
	CategoryID    uint     `json:"category_id" form:"category_id" binding:"required"`
	OtherCategory string   `json:"other_category" form:"other_category" binding:"max=255"`
	Title         string   `json:"title" form:"title" binding:"required,max=255"`
	Description   string   `json:"description" form:"description" binding:"required,max=5000"`
	OfficeID      *uint    `json:"office_id" form:"office_id"`
	Priority      string   `json:"priority" form:"priority"`
	IsAnonymous   bool     `json:"is_anonymous" form:"is_anonymous"`
	Location      string   `json:"location" form:"location" binding:"max=255"`
	IncidentDate  string   `json:"incident_date" form:"incident_date"`
	Attachments   []string `json:"-" form:"-"`
}

func (r *CreateConcernRequest) ToCommand(studentID uint) (usecases.CreateConcernCommand, error) {
	cmd := usecases.CreateConcernCommand{
		StudentID:     studentID,
		CategoryID:    r.CategoryID,
		OtherCategory: r.OtherCategory,
		Title:         r.Title,
		Description:   r.Description,
		OfficeID:      r.OfficeID,
		Priority:      r.Priority,
		IsAnonymous:   r.IsAnonymous,
		Location:      r.Location,
		Attachments:   r.Attachments,
	}

	if r.IncidentDate != "" {
		parsed, err := time.Parse("2006-01-02", r.IncidentDate)
		if err != nil {
			return cmd, errors.NewValidationError("incident_date must be in YYYY-MM-DD format")
		}
		cmd.IncidentDate = &parsed
	}

	return cmd, nil
}

type UpdateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks" binding:"max=1000"`
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type AssignOfficeRequest struct {
	OfficeID uint `json:"office_id" binding:"required"`
}

type ResolveConcernRequest struct {
	Notes string `json:"notes" binding:"required,max=5000"`
}

type AddCommentRequest struct {
	Text       string `json:"text" binding:"required,max=5000"`
	IsInternal bool   `json:"is_internal"`
}

type ListConcernsRequest struct {
	Page       int
	PageSize   int
	Status     string
	Priority   string
	CategoryID uint
}

func parseListConcernsRequest(c *gin.Context) (*ListConcernsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListConcernsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	if categoryStr := c.Query("category_id"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid category_id")
		}
		req.CategoryID = uint(categoryID)
	}

	return req, nil
}
