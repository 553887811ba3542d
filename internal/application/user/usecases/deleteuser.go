package usecases

import (
	"context"

	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID  uint
	ActorID uint
}

// DeleteUserUseCase hard deletes an account. The repository removes the
// user's concerns, comments, notifications and history rows in the same
// transaction. Admins cannot delete themselves.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewForbiddenError("you cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return err
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "deleted_by", cmd.ActorID)

	return nil
}
