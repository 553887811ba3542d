package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

// GoogleLoginRedirect carries everything the HTTP layer needs to start the
// consent flow: the redirect URL plus the state and PKCE verifier it must
// stash in the callback cookie.
type GoogleLoginRedirect struct {
	URL          string
	State        string
	CodeVerifier string
}

type InitiateGoogleLoginUseCase struct {
	oauthService GoogleOAuthService
	logger       logger.Interface
}

func NewInitiateGoogleLoginUseCase(oauthService GoogleOAuthService, logger logger.Interface) *InitiateGoogleLoginUseCase {
	return &InitiateGoogleLoginUseCase{oauthService: oauthService, logger: logger}
}

func (uc *InitiateGoogleLoginUseCase) Execute(ctx context.Context) (*GoogleLoginRedirect, error) {
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		uc.logger.Errorw("failed to generate oauth state", "error", err)
		return nil, errors.NewInternalError("failed to start google sign-in")
	}
	state := hex.EncodeToString(stateBytes)

	url, verifier := uc.oauthService.AuthCodeURL(state)

	return &GoogleLoginRedirect{
		URL:          url,
		State:        state,
		CodeVerifier: verifier,
	}, nil
}
