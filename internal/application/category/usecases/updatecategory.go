package usecases

import (
	"context"

	"grievance/internal/domain/category"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type UpdateCategoryCommand struct {
	CategoryID  uint
	Name        string
	Description string
	Reactivate  bool
}

type UpdateCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewUpdateCategoryUseCase(categoryRepo category.CategoryRepository, logger logger.Interface) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*CategoryDTO, error) {
	c, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, errors.NewNotFoundError("category not found")
	}

	if c.Name() != cmd.Name {
		exists, err := uc.categoryRepo.ExistsByName(ctx, cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check category name", "error", err, "name", cmd.Name)
			return nil, err
		}
		if exists {
			return nil, errors.NewConflictError("a category with this name already exists")
		}
	}

	if err := c.Update(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Reactivate {
		c.Activate()
	}

	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update category", "error", err, "category_id", c.ID())
		return nil, err
	}

	return newCategoryDTO(c), nil
}
