package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	// The not-found and wrong-password paths return the same error so the
	// response does not reveal which emails are registered.
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	if existing.PasswordHash() == "" {
		// Google-only accounts have no password.
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.passwordHasher.Compare(existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if !existing.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}
	if !existing.IsEmailVerified() {
		return nil, errors.NewEmailNotVerifiedError(existing.Email().String())
	}

	token, expiresIn, err := uc.tokenService.GenerateAccessToken(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &AuthResult{
		User:        dto.NewUserDTO(existing),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
