package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/application/user/dto"
	"grievance/internal/application/user/usecases"
	"grievance/internal/interfaces/http/handlers/testutil"
	"grievance/internal/shared/authorization"
	"grievance/internal/shared/errors"
)

type authMocks struct {
	register       *mockRegisterExecutor
	login          *mockLoginExecutor
	verifyEmail    *mockVerifyEmailExecutor
	resendCode     *mockResendCodeExecutor
	googleLogin    *mockInitiateGoogleLoginExecutor
	googleCallback *mockHandleGoogleCallbackExecutor
	googleComplete *mockCompleteGoogleRegistrationExecutor
	getProfile     *mockGetProfileExecutor
}

func newTestAuthHandler(m authMocks) *AuthHandler {
	if m.register == nil {
		m.register = &mockRegisterExecutor{}
	}
	if m.login == nil {
		m.login = &mockLoginExecutor{}
	}
	if m.verifyEmail == nil {
		m.verifyEmail = &mockVerifyEmailExecutor{}
	}
	if m.resendCode == nil {
		m.resendCode = &mockResendCodeExecutor{}
	}
	if m.googleLogin == nil {
		m.googleLogin = &mockInitiateGoogleLoginExecutor{}
	}
	if m.googleCallback == nil {
		m.googleCallback = &mockHandleGoogleCallbackExecutor{}
	}
	if m.googleComplete == nil {
		m.googleComplete = &mockCompleteGoogleRegistrationExecutor{}
	}
	if m.getProfile == nil {
		m.getProfile = &mockGetProfileExecutor{}
	}

	return NewAuthHandler(
		m.register,
		m.login,
		m.verifyEmail,
		m.resendCode,
		m.googleLogin,
		m.googleCallback,
		m.googleComplete,
		m.getProfile,
	)
}

func testAuthResult() *usecases.AuthResult {
	return &usecases.AuthResult{
		User: &dto.UserDTO{
			ID:     1,
			SRCode: "21-00001",
			Email:  "juan.delacruz@g.batstate-u.edu.ph",
			Role:   "student",
		},
		AccessToken: "test-token",
		ExpiresIn:   3600,
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	var captured usecases.RegisterCommand
	handler := newTestAuthHandler(authMocks{
		register: &mockRegisterExecutor{
			executeFn: func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
				captured = cmd
				result := testAuthResult()
				result.RequiresVerification = true
				return result, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", gin.H{
		"sr_code":    "21-00001",
		"email":      "juan.delacruz@g.batstate-u.edu.ph",
		"password":   "s3cretpass",
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
		"program":    "BSIT",
		"year_level": 2,
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "21-00001", captured.SRCode)
	assert.Equal(t, 2, captured.YearLevel)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var auth AuthResponse
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	assert.Equal(t, "test-token", auth.AccessToken)
	assert.Equal(t, "Bearer", auth.TokenType)
	assert.True(t, auth.RequiresVerification)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler := newTestAuthHandler(authMocks{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", gin.H{
		"sr_code": "21-00001",
		"email":   "not-an-email",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		register: &mockRegisterExecutor{
			executeFn: func(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error) {
				return nil, errors.NewConflictError("email already registered")
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/register", gin.H{
		"sr_code":    "21-00001",
		"email":      "juan.delacruz@g.batstate-u.edu.ph",
		"password":   "s3cretpass",
		"first_name": "Juan",
		"last_name":  "Dela Cruz",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		login: &mockLoginExecutor{
			executeFn: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
				return testAuthResult(), nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", gin.H{
		"email":    "juan.delacruz@g.batstate-u.edu.ph",
		"password": "s3cretpass",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		login: &mockLoginExecutor{
			executeFn: func(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
				return nil, errors.NewUnauthorizedError("invalid email or password")
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", gin.H{
		"email":    "juan.delacruz@g.batstate-u.edu.ph",
		"password": "wrong",
	})

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_VerifyEmail_Success(t *testing.T) {
	var capturedUserID uint
	handler := newTestAuthHandler(authMocks{
		verifyEmail: &mockVerifyEmailExecutor{
			executeFn: func(ctx context.Context, cmd usecases.VerifyEmailCommand) (*dto.UserDTO, error) {
				capturedUserID = cmd.UserID
				return &dto.UserDTO{ID: cmd.UserID, EmailVerified: true}, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/verify-email", gin.H{"code": "123456"})
	testutil.SetAuthContext(c, 7, authorization.RoleStudent)

	handler.VerifyEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), capturedUserID)
}

func TestAuthHandler_VerifyEmail_WrongCode(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		verifyEmail: &mockVerifyEmailExecutor{
			executeFn: func(ctx context.Context, cmd usecases.VerifyEmailCommand) (*dto.UserDTO, error) {
				return nil, errors.NewValidationError("invalid or expired verification code")
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/verify-email", gin.H{"code": "000000"})
	testutil.SetAuthContext(c, 7, authorization.RoleStudent)

	handler.VerifyEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_VerifyEmail_CodeLengthValidated(t *testing.T) {
	handler := newTestAuthHandler(authMocks{})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/verify-email", gin.H{"code": "123"})
	testutil.SetAuthContext(c, 7, authorization.RoleStudent)

	handler.VerifyEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_SendVerificationCode_Success(t *testing.T) {
	var capturedUserID uint
	handler := newTestAuthHandler(authMocks{
		resendCode: &mockResendCodeExecutor{
			executeFn: func(ctx context.Context, cmd usecases.ResendCodeCommand) error {
				capturedUserID = cmd.UserID
				return nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/send-verification-code", nil)
	testutil.SetAuthContext(c, 4, authorization.RoleStudent)

	handler.SendVerificationCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), capturedUserID)
}

func TestAuthHandler_GoogleLogin_SetsStateCookies(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		googleLogin: &mockInitiateGoogleLoginExecutor{
			executeFn: func(ctx context.Context) (*usecases.GoogleLoginRedirect, error) {
				return &usecases.GoogleLoginRedirect{
					URL:          "https://accounts.google.com/o/oauth2/auth?state=abc",
					State:        "abc",
					CodeVerifier: "verifier-xyz",
				}, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google", nil)

	handler.GoogleLogin(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var gotState, gotVerifier bool
	for _, ck := range cookies {
		switch ck.Name {
		case oauthStateCookie:
			gotState = true
			assert.Equal(t, "abc", ck.Value)
			assert.True(t, ck.HttpOnly)
		case oauthVerifierCookie:
			gotVerifier = true
			assert.Equal(t, "verifier-xyz", ck.Value)
		}
	}
	assert.True(t, gotState)
	assert.True(t, gotVerifier)
}

func TestAuthHandler_GoogleCallback_StateMismatch(t *testing.T) {
	handler := newTestAuthHandler(authMocks{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"state": "abc", "code": "authcode"})
	c.Request.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "different"})
	c.Request.AddCookie(&http.Cookie{Name: oauthVerifierCookie, Value: "verifier-xyz"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_GoogleCallback_MissingParams(t *testing.T) {
	handler := newTestAuthHandler(authMocks{})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_GoogleCallback_SignsInExistingUser(t *testing.T) {
	var captured usecases.GoogleCallbackCommand
	handler := newTestAuthHandler(authMocks{
		googleCallback: &mockHandleGoogleCallbackExecutor{
			executeFn: func(ctx context.Context, cmd usecases.GoogleCallbackCommand) (*usecases.GoogleCallbackResult, error) {
				captured = cmd
				return &usecases.GoogleCallbackResult{Auth: testAuthResult()}, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"state": "abc", "code": "authcode"})
	c.Request.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "abc"})
	c.Request.AddCookie(&http.Cookie{Name: oauthVerifierCookie, Value: "verifier-xyz"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "authcode", captured.Code)
	assert.Equal(t, "verifier-xyz", captured.CodeVerifier)
}

func TestAuthHandler_GoogleCallback_RegistrationRequired(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		googleCallback: &mockHandleGoogleCallbackExecutor{
			executeFn: func(ctx context.Context, cmd usecases.GoogleCallbackCommand) (*usecases.GoogleCallbackResult, error) {
				return &usecases.GoogleCallbackResult{
					RegistrationRequired: true,
					Pending: &usecases.GooglePendingRegistration{
						GoogleID: "google-sub-1",
						Email:    "maria.santos@g.batstate-u.edu.ph",
					},
				}, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/google/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"state": "abc", "code": "authcode"})
	c.Request.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "abc"})
	c.Request.AddCookie(&http.Cookie{Name: oauthVerifierCookie, Value: "verifier-xyz"})

	handler.GoogleCallback(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), "registration_required")
}

func TestAuthHandler_CompleteGoogleRegistration_Success(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		googleComplete: &mockCompleteGoogleRegistrationExecutor{
			executeFn: func(ctx context.Context, cmd usecases.CompleteGoogleRegistrationCommand) (*usecases.AuthResult, error) {
				return testAuthResult(), nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/google/complete", gin.H{
		"google_id":  "google-sub-1",
		"email":      "maria.santos@g.batstate-u.edu.ph",
		"sr_code":    "21-00002",
		"first_name": "Maria",
		"last_name":  "Santos",
	})

	handler.CompleteGoogleRegistration(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthHandler_VerifyToken_ReturnsProfile(t *testing.T) {
	handler := newTestAuthHandler(authMocks{
		getProfile: &mockGetProfileExecutor{
			executeFn: func(ctx context.Context, userID uint) (*dto.UserDTO, error) {
				return &dto.UserDTO{ID: userID, Email: "juan.delacruz@g.batstate-u.edu.ph"}, nil
			},
		},
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/verify", nil)
	testutil.SetAuthContext(c, 9, authorization.RoleStudent)

	handler.VerifyToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
