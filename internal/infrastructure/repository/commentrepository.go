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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, comment *concern.Comment) error {
	model, err := r.mapper.ToModel(comment)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

func (r *CommentRepository) ListByConcern(ctx context.Context, concernID uint, includeInternal bool) ([]*concern.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("concern_id = ?", concernID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var modelList []*models.CommentModel
	if err := query.
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
