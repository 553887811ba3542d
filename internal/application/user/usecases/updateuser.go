package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

// UpdateUserCommand is the admin-side edit: profile fields plus role and
// active flag. Nil pointers leave the current value in place.
type UpdateUserCommand struct {
	UserID    uint
	FirstName string
	LastName  string
	Program   string
	YearLevel int
	Role      *string
	IsActive  *bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Program, cmd.YearLevel); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Role != nil {
		role := authorization.UserRole(*cmd.Role)
		if err := existing.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID)

	return dto.NewUserDTO(existing), nil
}
