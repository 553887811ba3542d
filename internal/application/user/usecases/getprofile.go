package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTO(existing), nil
}
