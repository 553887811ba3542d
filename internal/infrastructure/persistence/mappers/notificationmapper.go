package mappers

import (
	"fmt"

	"grievance/internal/domain/notification"
	"grievance/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between domain entities and persistence models
type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type notificationMapper struct{}

// NewNotificationMapper creates a new notification mapper
func NewNotificationMapper() NotificationMapper {
	return &notificationMapper{}
}

func (m *notificationMapper) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.ConcernID,
		notification.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.IsRead,
		model.ReadAt,
		model.CreatedAt,
	)
}

func (m *notificationMapper) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		ConcernID: entity.ConcernID(),
		Type:      entity.Type().String(),
		Title:     entity.Title(),
		Message:   entity.Message(),
		IsRead:    entity.IsRead(),
		ReadAt:    entity.ReadAt(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *notificationMapper) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
