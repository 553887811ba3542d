package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/user/usecases"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC    usecases.GetProfileExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	listUsersUC     usecases.ListUsersExecutor
	updateUserUC    usecases.UpdateUserExecutor
	deleteUserUC    usecases.DeleteUserExecutor
	logger          logger.Interface
}

func NewUserHandler(
	getProfileUC usecases.GetProfileExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
) *UserHandler {
	return &UserHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		listUsersUC:     listUsersUC,
		updateUserUC:    updateUserUC,
		deleteUserUC:    deleteUserUC,
		logger:          logger.NewLogger(),
	}
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := utils.AuthenticatedUser(c)

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Program   string `json:"program" binding:"max=100"`
	YearLevel int    `json:"year_level" binding:"omitempty,min=1,max=6"`
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.UpdateProfileCommand{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Program:   req.Program,
		YearLevel: req.YearLevel,
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query, err := parseListUsersQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

// ListStudents handles GET /users/students
func (h *UserHandler) ListStudents(c *gin.Context) {
	h.listByRole(c, authorization.RoleStudent)
}

// ListAdmins handles GET /users/admins
func (h *UserHandler) ListAdmins(c *gin.Context) {
	h.listByRole(c, authorization.RoleAdmin)
}

func (h *UserHandler) listByRole(c *gin.Context, role authorization.UserRole) {
	query, err := parseListUsersQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.Role = string(role)

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

type UpdateUserRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  string  `json:"last_name" binding:"required,max=100"`
	Program   string  `json:"program" binding:"max=100"`
	YearLevel int     `json:"year_level" binding:"omitempty,min=1,max=6"`
	Role      *string `json:"role" binding:"omitempty,oneof=student admin"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateUserCommand{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Program:   req.Program,
		YearLevel: req.YearLevel,
		Role:      req.Role,
		IsActive:  req.IsActive,
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id. Removes the user together with
// their concerns, comments, and notifications.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.DeleteUserCommand{
		UserID:  userID,
		ActorID: actorID,
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseListUsersQuery(c *gin.Context) (usecases.ListUsersQuery, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return usecases.ListUsersQuery{
		Role:     c.Query("role"),
		Program:  c.Query("program"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}, nil
}
