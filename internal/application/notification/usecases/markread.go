package usecases

import (
	"context"

	"grievance/internal/domain/notification"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type MarkReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

// Execute marks one of the user's notifications read. The user scoping is
// enforced by the repository so nobody can flip another user's rows.
func (uc *MarkReadUseCase) Execute(ctx context.Context, notificationID, userID uint) error {
	if notificationID == 0 {
		return errors.NewValidationError("notification ID is required")
	}
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", notificationID, "error", err)
		return err
	}
	return nil
}

type MarkAllReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkAllReadUseCase) Execute(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		uc.logger.Errorw("failed to mark all notifications read", "user_id", userID, "error", err)
		return err
	}
	return nil
}
