package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/category/usecases"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

type ListCategoriesExecutor interface {
	Execute(ctx context.Context, includeInactive bool) ([]*usecases.CategoryDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateCategoryCommand) (*usecases.CategoryDTO, error)
}

type UpdateCategoryExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*usecases.CategoryDTO, error)
}

type DeleteCategoryExecutor interface {
	Execute(ctx context.Context, categoryID uint) error
}

type ListOfficesExecutor interface {
	Execute(ctx context.Context, includeInactive bool) ([]*usecases.OfficeDTO, error)
}

type CategoryHandler struct {
	listCategoriesUC ListCategoriesExecutor
	createCategoryUC CreateCategoryExecutor
	updateCategoryUC UpdateCategoryExecutor
	deleteCategoryUC DeleteCategoryExecutor
	listOfficesUC    ListOfficesExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	listCategoriesUC ListCategoriesExecutor,
	createCategoryUC CreateCategoryExecutor,
	updateCategoryUC UpdateCategoryExecutor,
	deleteCategoryUC DeleteCategoryExecutor,
	listOfficesUC ListOfficesExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		listCategoriesUC: listCategoriesUC,
		createCategoryUC: createCategoryUC,
		updateCategoryUC: updateCategoryUC,
		deleteCategoryUC: deleteCategoryUC,
		listOfficesUC:    listOfficesUC,
		logger:           logger.NewLogger(),
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listCategoriesUC.Execute(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	}

	result, err := h.createCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Reactivate  bool   `json:"reactivate"`
}

// UpdateCategory handles PUT /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateCategoryCommand{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		Reactivate:  req.Reactivate,
	}

	result, err := h.updateCategoryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /categories/:id. Categories still referenced
// by concerns are deactivated instead of removed.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCategoryUC.Execute(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListOffices handles GET /offices
func (h *CategoryHandler) ListOffices(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	result, err := h.listOfficesUC.Execute(c.Request.Context(), includeInactive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
