package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/shared/authorization"
)

// PasswordHasher hashes and verifies passwords. The bcrypt implementation
// lives in infrastructure/auth.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// TokenService issues and validates the access tokens the HTTP middleware
// checks on every authenticated route.
type TokenService interface {
	GenerateAccessToken(userID uint, role authorization.UserRole) (token string, expiresIn int64, err error)
	ValidateToken(token string) (userID uint, role authorization.UserRole, err error)
}

// CodeGenerator produces email verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// AuthEmailService delivers account emails. Delivery is best effort; the
// SMTP implementation retries internally.
type AuthEmailService interface {
	SendVerificationEmail(to, name, code string) error
}

// GoogleUserInfo is the subset of the userinfo endpoint the sign-in flow
// needs.
type GoogleUserInfo struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
}

// GoogleOAuthService wraps the OAuth2 authorization-code flow with PKCE.
type GoogleOAuthService interface {
	// AuthCodeURL returns the consent page URL plus the PKCE verifier the
	// caller must present on callback.
	AuthCodeURL(state string) (url string, codeVerifier string)
	// ExchangeCode swaps the callback code for the user's profile.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*GoogleUserInfo, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

type VerifyEmailExecutor interface {
	Execute(ctx context.Context, cmd VerifyEmailCommand) (*dto.UserDTO, error)
}

type ResendCodeExecutor interface {
	Execute(ctx context.Context, cmd ResendCodeCommand) error
}

type InitiateGoogleLoginExecutor interface {
	Execute(ctx context.Context) (*GoogleLoginRedirect, error)
}

type HandleGoogleCallbackExecutor interface {
	Execute(ctx context.Context, cmd GoogleCallbackCommand) (*GoogleCallbackResult, error)
}

type CompleteGoogleRegistrationExecutor interface {
	Execute(ctx context.Context, cmd CompleteGoogleRegistrationCommand) (*AuthResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}
