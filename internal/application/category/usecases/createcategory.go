package usecases

import (
	"context"
	"strings"

	"grievance/internal/domain/category"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name        string
	Description string
}

type CreateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err, "name", name)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("a category with this name already exists")
	}

	c, err := category.NewCategory(name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create category", "error", err, "name", name)
		return nil, err
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "name", c.Name())
	return newCategoryDTO(c), nil
}
