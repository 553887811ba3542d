package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"grievance/internal/domain/category"
	"grievance/internal/infrastructure/persistence/mappers"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/db"
	"grievance/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     database,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepository) List(ctx context.Context, includeInactive bool) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.CategoryModel{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.CategoryModel
	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CategoryModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}

	return nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CategoryModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}

	return count > 0, nil
}

type OfficeRepository struct {
	db     *gorm.DB
	mapper mappers.OfficeMapper
}

func NewOfficeRepository(database *gorm.DB) *OfficeRepository {
	return &OfficeRepository{
		db:     database,
		mapper: mappers.NewOfficeMapper(),
	}
}

func (r *OfficeRepository) Create(ctx context.Context, o *category.Office) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create office: %w", err)
	}

	return o.SetID(model.ID)
}

func (r *OfficeRepository) GetByID(ctx context.Context, id uint) (*category.Office, error) {
	var model models.OfficeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("office not found")
		}
		return nil, fmt.Errorf("failed to find office: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OfficeRepository) List(ctx context.Context, includeInactive bool) ([]*category.Office, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.OfficeModel{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.OfficeModel
	if err := query.Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *OfficeRepository) Update(ctx context.Context, o *category.Office) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.OfficeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update office: %w", result.Error)
	}

	return nil
}
