package usecases

import (
	"context"
	"time"

	"grievance/internal/domain/category"
	"grievance/internal/shared/logger"
)

type CategoryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

type OfficeDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func newOfficeDTO(o *category.Office) *OfficeDTO {
	return &OfficeDTO{
		ID:          o.ID(),
		Name:        o.Name(),
		Description: o.Description(),
		Email:       o.Email(),
		Phone:       o.Phone(),
		IsActive:    o.IsActive(),
	}
}

type ListCategoriesUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, includeInactive bool) ([]*CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx, includeInactive)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, err
	}

	dtos := make([]*CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, newCategoryDTO(c))
	}
	return dtos, nil
}

type ListOfficesUseCase struct {
	officeRepo category.OfficeRepository
	logger     logger.Interface
}

func NewListOfficesUseCase(officeRepo category.OfficeRepository, logger logger.Interface) *ListOfficesUseCase {
	return &ListOfficesUseCase{officeRepo: officeRepo, logger: logger}
}

func (uc *ListOfficesUseCase) Execute(ctx context.Context, includeInactive bool) ([]*OfficeDTO, error) {
	offices, err := uc.officeRepo.List(ctx, includeInactive)
	if err != nil {
		uc.logger.Errorw("failed to list offices", "error", err)
		return nil, err
	}

	dtos := make([]*OfficeDTO, 0, len(offices))
	for _, o := range offices {
		dtos = append(dtos, newOfficeDTO(o))
	}
	return dtos, nil
}
