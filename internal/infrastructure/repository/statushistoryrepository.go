package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"grievance/internal/domain/concern"
	"grievance/internal/infrastructure/persistence/mappers"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/db"
)

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.StatusHistoryMapper
}

func NewStatusHistoryRepository(database *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     database,
		mapper: mappers.NewStatusHistoryMapper(),
	}
}

func (r *StatusHistoryRepository) Append(ctx context.Context, entry *concern.StatusHistoryEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}

	return entry.SetID(model.ID)
}

func (r *StatusHistoryRepository) ListByConcern(ctx context.Context, concernID uint) ([]*concern.StatusHistoryEntry, error) {
	var modelList []*models.StatusHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("concern_id = ?", concernID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
