package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"grievance/internal/domain/notification"
	"grievance/internal/infrastructure/persistence/mappers"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/db"
	"grievance/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	var modelList []*models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to find notification: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// MarkRead flips the read flag. The user_id predicate keeps one user from
// marking another user's notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now()
	result := tx.Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.NotificationModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check notification: %w", err)
		}
		// Already-read notifications are a no-op, missing ones are an error.
		if count == 0 {
			return errors.NewNotFoundError("notification not found")
		}
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now()
	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}
