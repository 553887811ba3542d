package usecases

import (
	"context"
	"time"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type VerifyEmailCommand struct {
	UserID uint
	Code   string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{userRepo: userRepo, logger: logger}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Code == "" {
		return nil, errors.NewValidationError("verification code is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := existing.VerifyEmail(cmd.Code, time.Now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist email verification", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("email verified", "user_id", cmd.UserID)

	return dto.NewUserDTO(existing), nil
}
