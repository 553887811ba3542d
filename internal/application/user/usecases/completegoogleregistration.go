package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	vo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type CompleteGoogleRegistrationCommand struct {
	GoogleID  string
	Email     string
	SRCode    string
	FirstName string
	LastName  string
	Program   string
	YearLevel int
}

// CompleteGoogleRegistrationUseCase finishes a first-time Google sign-in
// once the student has supplied the fields Google cannot provide.
type CompleteGoogleRegistrationUseCase struct {
	userRepo     user.Repository
	tokenService TokenService
	logger       logger.Interface
}

func NewCompleteGoogleRegistrationUseCase(
	userRepo user.Repository,
	tokenService TokenService,
	logger logger.Interface,
) *CompleteGoogleRegistrationUseCase {
	return &CompleteGoogleRegistrationUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *CompleteGoogleRegistrationUseCase) Execute(ctx context.Context, cmd CompleteGoogleRegistrationCommand) (*AuthResult, error) {
	if cmd.GoogleID == "" {
		return nil, errors.NewValidationError("google ID is required")
	}

	srCode, err := vo.NewSRCode(cmd.SRCode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if exists, err := uc.userRepo.ExistsByEmail(ctx, email.String()); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}
	if exists, err := uc.userRepo.ExistsBySRCode(ctx, srCode.String()); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.NewConflictError("an account with this SR code already exists")
	}

	newUser, err := user.NewGoogleUser(srCode, email, cmd.GoogleID, cmd.FirstName, cmd.LastName, cmd.Program, cmd.YearLevel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create google user", "error", err)
		return nil, err
	}

	token, expiresIn, err := uc.tokenService.GenerateAccessToken(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("google registration completed", "user_id", newUser.ID(), "sr_code", srCode.String())

	return &AuthResult{
		User:        dto.NewUserDTO(newUser),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
