package usecases

import (
	"context"

	"grievance/internal/domain/category"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

// ConcernCounter reports how many concerns reference a category.
type ConcernCounter interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type DeleteCategoryUseCase struct {
	categoryRepo category.CategoryRepository
	concerns     ConcernCounter
	logger       logger.Interface
}

func NewDeleteCategoryUseCase(categoryRepo category.CategoryRepository, concerns ConcernCounter, logger logger.Interface) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryRepo: categoryRepo, concerns: concerns, logger: logger}
}

// Execute deactivates a category. Categories referenced by existing
// concerns are never removed from the database, so history stays intact.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, categoryID uint) error {
	c, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return errors.NewNotFoundError("category not found")
	}

	count, err := uc.concerns.CountByCategory(ctx, categoryID)
	if err != nil {
		uc.logger.Errorw("failed to count concerns for category", "error", err, "category_id", categoryID)
		return err
	}
	if count > 0 {
		return errors.NewConflictError("category has existing concerns and cannot be deleted, deactivate it instead")
	}

	c.Deactivate()
	if err := uc.categoryRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to deactivate category", "error", err, "category_id", categoryID)
		return err
	}

	uc.logger.Infow("category deactivated", "category_id", categoryID)
	return nil
}
