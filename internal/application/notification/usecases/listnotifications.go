package usecases

import (
	"context"
	"time"

	"grievance/internal/domain/notification"
	"grievance/internal/shared/constants"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type NotificationDTO struct {
	ID        uint       `json:"id"`
	ConcernID *uint      `json:"concern_id,omitempty"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func newNotificationDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:        n.ID(),
		ConcernID: n.ConcernID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		ReadAt:    n.ReadAt(),
		CreatedAt: n.CreatedAt(),
	}
}

type ListNotificationsResult struct {
	Notifications []*NotificationDTO
	UnreadCount   int64
}

// ListNotificationsUseCase returns the user's newest notifications. The
// list is capped; older entries are simply not shown.
type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, userID uint) (*ListNotificationsResult, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	notifications, err := uc.notificationRepo.ListByUser(ctx, userID, constants.MaxNotificationsPerFetch)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", userID, "error", err)
		return nil, err
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", userID, "error", err)
		return nil, err
	}

	dtos := make([]*NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, newNotificationDTO(n))
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		UnreadCount:   unread,
	}, nil
}
