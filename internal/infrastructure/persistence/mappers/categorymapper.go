package mappers

import (
	"fmt"

	"grievance/internal/domain/category"
	"grievance/internal/infrastructure/persistence/models"
)

// CategoryMapper handles the conversion between domain entities and persistence models
type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*category.Category, error)
	ToModel(entity *category.Category) (*models.CategoryModel, error)
	ToEntities(models []*models.CategoryModel) ([]*category.Category, error)
}

type categoryMapper struct{}

// NewCategoryMapper creates a new category mapper
func NewCategoryMapper() CategoryMapper {
	return &categoryMapper{}
}

func (m *categoryMapper) ToEntity(model *models.CategoryModel) (*category.Category, error) {
	if model == nil {
		return nil, nil
	}
	return category.ReconstructCategory(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *categoryMapper) ToModel(entity *category.Category) (*models.CategoryModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.CategoryModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *categoryMapper) ToEntities(modelList []*models.CategoryModel) ([]*category.Category, error) {
	entities := make([]*category.Category, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map category %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// OfficeMapper handles the conversion between domain entities and persistence models
type OfficeMapper interface {
	ToEntity(model *models.OfficeModel) (*category.Office, error)
	ToModel(entity *category.Office) (*models.OfficeModel, error)
	ToEntities(models []*models.OfficeModel) ([]*category.Office, error)
}

type officeMapper struct{}

// NewOfficeMapper creates a new office mapper
func NewOfficeMapper() OfficeMapper {
	return &officeMapper{}
}

func (m *officeMapper) ToEntity(model *models.OfficeModel) (*category.Office, error) {
	if model == nil {
		return nil, nil
	}
	return category.ReconstructOffice(
		model.ID,
		model.Name,
		model.Description,
		model.Email,
		model.Phone,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *officeMapper) ToModel(entity *category.Office) (*models.OfficeModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.OfficeModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Email:       entity.Email(),
		Phone:       entity.Phone(),
		IsActive:    entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *officeMapper) ToEntities(modelList []*models.OfficeModel) ([]*category.Office, error) {
	entities := make([]*category.Office, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map office %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
