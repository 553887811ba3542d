package concern

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/concern/usecases"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

type ConcernHandler struct {
	createConcernUC  usecases.CreateConcernExecutor
	getConcernUC     usecases.GetConcernExecutor
	listConcernsUC   usecases.ListConcernsExecutor
	updateStatusUC   usecases.UpdateStatusExecutor
	updatePriorityUC usecases.UpdatePriorityExecutor
	assignOfficeUC   usecases.AssignOfficeExecutor
	resolveConcernUC usecases.ResolveConcernExecutor
	addCommentUC     usecases.AddCommentExecutor
	getCommentsUC    usecases.GetCommentsExecutor
	getHistoryUC     usecases.GetHistoryExecutor
	getStatisticsUC  usecases.GetStatisticsExecutor
	uploadDir        string
	logger           logger.Interface
}

func NewConcernHandler(
	createConcernUC usecases.CreateConcernExecutor,
	getConcernUC usecases.GetConcernExecutor,
	listConcernsUC usecases.ListConcernsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	updatePriorityUC usecases.UpdatePriorityExecutor,
	assignOfficeUC usecases.AssignOfficeExecutor,
	resolveConcernUC usecases.ResolveConcernExecutor,
	addCommentUC usecases.AddCommentExecutor,
	getCommentsUC usecases.GetCommentsExecutor,
	getHistoryUC usecases.GetHistoryExecutor,
	getStatisticsUC usecases.GetStatisticsExecutor,
	uploadDir string,
) *ConcernHandler {
	return &ConcernHandler{
		createConcernUC:  createConcernUC,
		getConcernUC:     getConcernUC,
		listConcernsUC:   listConcernsUC,
		updateStatusUC:   updateStatusUC,
		updatePriorityUC: updatePriorityUC,
		assignOfficeUC:   assignOfficeUC,
		resolveConcernUC: resolveConcernUC,
		addCommentUC:     addCommentUC,
		getCommentsUC:    getCommentsUC,
		getHistoryUC:     getHistoryUC,
		getStatisticsUC:  getStatisticsUC,
		uploadDir:        uploadDir,
		logger:           logger.NewLogger(),
	}
}

// CreateConcern handles POST /concerns. Accepts JSON or multipart form data;
// the multipart path also stores uploaded attachments.
func (h *ConcernHandler) CreateConcern(c *gin.Context) {
	var req CreateConcernRequest

	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart form for create concern", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}

		form, err := c.MultipartForm()
		if err == nil && form != nil {
			paths, err := saveAttachments(c, h.uploadDir, form.File["attachments"])
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			req.Attachments = paths
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create concern", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd, err := req.ToCommand(userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createConcernUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":            result.ConcernID,
		"ticket_number": result.TicketNumber,
		"status":        result.Status,
		"created_at":    result.CreatedAt,
	}, "Concern submitted successfully")
}

// GetConcern handles GET /concerns/:id
func (h *ConcernHandler) GetConcern(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := utils.AuthenticatedUser(c)
	query := usecases.GetConcernQuery{
		ConcernID:   concernID,
		RequesterID: userID,
		IsAdmin:     authorization.ParseUserRole(role).IsAdmin(),
	}

	result, err := h.getConcernUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListConcerns handles GET /concerns. Students see their own concerns,
// admins see everything.
func (h *ConcernHandler) ListConcerns(c *gin.Context) {
	req, err := parseListConcernsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := utils.AuthenticatedUser(c)
	query := usecases.ListConcernsQuery{
		RequesterID: userID,
		IsAdmin:     authorization.ParseUserRole(role).IsAdmin(),
		Status:      req.Status,
		CategoryID:  req.CategoryID,
		Priority:    req.Priority,
		Page:        req.Page,
		PageSize:    req.PageSize,
	}

	result, err := h.listConcernsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Concerns, result.Total, result.Page, result.PageSize)
}

// UpdateStatus handles PATCH /concerns/:id/status
func (h *ConcernHandler) UpdateStatus(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.UpdateStatusCommand{
		ConcernID: concernID,
		NewStatus: req.Status,
		ActorID:   userID,
		Remarks:   req.Remarks,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// UpdatePriority handles PATCH /concerns/:id/priority
func (h *ConcernHandler) UpdatePriority(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdatePriorityCommand{
		ConcernID: concernID,
		Priority:  req.Priority,
	}

	result, err := h.updatePriorityUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated successfully", result)
}

// AssignOffice handles PATCH /concerns/:id/assign
func (h *ConcernHandler) AssignOffice(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.AssignOfficeCommand{
		ConcernID: concernID,
		OfficeID:  req.OfficeID,
		AdminID:   userID,
	}

	result, err := h.assignOfficeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Concern assigned successfully", result)
}

// ResolveConcern handles PATCH /concerns/:id/resolve
func (h *ConcernHandler) ResolveConcern(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveConcernRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.ResolveConcernCommand{
		ConcernID: concernID,
		AdminID:   userID,
		Notes:     req.Notes,
	}

	result, err := h.resolveConcernUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Concern resolved successfully", result)
}

// AddComment handles POST /concerns/:id/comments
func (h *ConcernHandler) AddComment(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, role := utils.AuthenticatedUser(c)
	cmd := usecases.AddCommentCommand{
		ConcernID:     concernID,
		AuthorID:      userID,
		AuthorIsAdmin: authorization.ParseUserRole(role).IsAdmin(),
		Text:          req.Text,
		IsInternal:    req.IsInternal,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// GetComments handles GET /concerns/:id/comments
func (h *ConcernHandler) GetComments(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := utils.AuthenticatedUser(c)
	query := usecases.GetCommentsQuery{
		ConcernID:   concernID,
		RequesterID: userID,
		IsAdmin:     authorization.ParseUserRole(role).IsAdmin(),
	}

	result, err := h.getCommentsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHistory handles GET /concerns/:id/history
func (h *ConcernHandler) GetHistory(c *gin.Context) {
	concernID, err := utils.ParseIDParam(c, "id", "concern")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, role := utils.AuthenticatedUser(c)
	query := usecases.GetHistoryQuery{
		ConcernID:   concernID,
		RequesterID: userID,
		IsAdmin:     authorization.ParseUserRole(role).IsAdmin(),
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStatistics handles GET /concerns/statistics
func (h *ConcernHandler) GetStatistics(c *gin.Context) {
	result, err := h.getStatisticsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
