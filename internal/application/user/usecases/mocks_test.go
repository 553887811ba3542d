package usecases

import (
	"context"
	stderrors "errors"

	"grievance/internal/domain/user"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/logger"
)

var errMismatch = stderrors.New("password mismatch")

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, u *user.User) error
	GetByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	GetBySRCodeFunc    func(ctx context.Context, srCode string) (*user.User, error)
	GetByGoogleIDFunc  func(ctx context.Context, googleID string) (*user.User, error)
	UpdateFunc         func(ctx context.Context, u *user.User) error
	DeleteFunc         func(ctx context.Context, id uint) error
	ListFunc           func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	ExistsBySRCodeFunc func(ctx context.Context, srCode string) (bool, error)
	ListAdminsFunc     func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetBySRCode(ctx context.Context, srCode string) (*user.User, error) {
	if m.GetBySRCodeFunc != nil {
		return m.GetBySRCodeFunc(ctx, srCode)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	if m.GetByGoogleIDFunc != nil {
		return m.GetByGoogleIDFunc(ctx, googleID)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsBySRCode(ctx context.Context, srCode string) (bool, error) {
	if m.ExistsBySRCodeFunc != nil {
		return m.ExistsBySRCodeFunc(ctx, srCode)
	}
	return false, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return errMismatch
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (string, int64, error)
	ValidateFunc func(token string) (uint, authorization.UserRole, error)
}

func (m *mockTokenService) GenerateAccessToken(userID uint, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", 3600, nil
}

func (m *mockTokenService) ValidateToken(token string) (uint, authorization.UserRole, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return 1, authorization.RoleStudent, nil
}

type mockCodeGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockCodeGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "482913", nil
}

type mockAuthEmailService struct {
	SendVerificationEmailFunc func(to, name, code string) error
}

func (m *mockAuthEmailService) SendVerificationEmail(to, name, code string) error {
	if m.SendVerificationEmailFunc != nil {
		return m.SendVerificationEmailFunc(to, name, code)
	}
	return nil
}

type mockOAuthService struct {
	AuthCodeURLFunc  func(state string) (string, string)
	ExchangeCodeFunc func(ctx context.Context, code, codeVerifier string) (*GoogleUserInfo, error)
}

func (m *mockOAuthService) AuthCodeURL(state string) (string, string) {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state, "verifier"
}

func (m *mockOAuthService) ExchangeCode(ctx context.Context, code, codeVerifier string) (*GoogleUserInfo, error) {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code, codeVerifier)
	}
	return nil, nil
}
