package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type GoogleCallbackCommand struct {
	Code         string
	CodeVerifier string
}

// GoogleCallbackResult either signs the user in or reports that the Google
// account is new and registration must be completed with an SR code.
type GoogleCallbackResult struct {
	Auth                 *AuthResult
	RegistrationRequired bool
	Pending              *GooglePendingRegistration
}

// GooglePendingRegistration is the profile data carried over to the
// registration form for first-time Google sign-ins.
type GooglePendingRegistration struct {
	GoogleID  string `json:"google_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type HandleGoogleCallbackUseCase struct {
	userRepo     user.Repository
	oauthService GoogleOAuthService
	tokenService TokenService
	logger       logger.Interface
}

func NewHandleGoogleCallbackUseCase(
	userRepo user.Repository,
	oauthService GoogleOAuthService,
	tokenService TokenService,
	logger logger.Interface,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		userRepo:     userRepo,
		oauthService: oauthService,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, cmd GoogleCallbackCommand) (*GoogleCallbackResult, error) {
	if cmd.Code == "" {
		return nil, errors.NewValidationError("authorization code is required")
	}

	info, err := uc.oauthService.ExchangeCode(ctx, cmd.Code, cmd.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("google code exchange failed", "error", err)
		return nil, errors.NewOAuthError("google", "exchange")
	}

	existing, err := uc.userRepo.GetByGoogleID(ctx, info.Subject)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	if existing == nil {
		existing, err = uc.userRepo.GetByEmail(ctx, info.Email)
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
		if existing != nil {
			if err := existing.LinkGoogleAccount(info.Subject); err != nil {
				return nil, errors.NewConflictError(err.Error())
			}
			if err := uc.userRepo.Update(ctx, existing); err != nil {
				uc.logger.Errorw("failed to link google account", "user_id", existing.ID(), "error", err)
				return nil, err
			}
		}
	}

	if existing == nil {
		// First sign-in with this Google account: the frontend collects
		// the SR code and finishes via CompleteGoogleRegistration.
		return &GoogleCallbackResult{
			RegistrationRequired: true,
			Pending: &GooglePendingRegistration{
				GoogleID:  info.Subject,
				Email:     info.Email,
				FirstName: info.GivenName,
				LastName:  info.FamilyName,
			},
		}, nil
	}

	if !existing.IsActive() {
		return nil, errors.NewAccountInactiveError()
	}

	token, expiresIn, err := uc.tokenService.GenerateAccessToken(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("google sign-in completed", "user_id", existing.ID())

	return &GoogleCallbackResult{
		Auth: &AuthResult{
			User:        dto.NewUserDTO(existing),
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}
