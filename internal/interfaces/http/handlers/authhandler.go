package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"grievance/internal/application/user/usecases"
	"grievance/internal/shared/logger"
	"grievance/internal/shared/utils"
)

const (
	oauthStateCookie    = "oauth_state"
	oauthVerifierCookie = "oauth_verifier"
	oauthCookieMaxAge   = 600
)

type AuthHandler struct {
	registerUC       usecases.RegisterExecutor
	loginUC          usecases.LoginExecutor
	verifyEmailUC    usecases.VerifyEmailExecutor
	resendCodeUC     usecases.ResendCodeExecutor
	googleLoginUC    usecases.InitiateGoogleLoginExecutor
	googleCallbackUC usecases.HandleGoogleCallbackExecutor
	googleCompleteUC usecases.CompleteGoogleRegistrationExecutor
	getProfileUC     usecases.GetProfileExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	verifyEmailUC usecases.VerifyEmailExecutor,
	resendCodeUC usecases.ResendCodeExecutor,
	googleLoginUC usecases.InitiateGoogleLoginExecutor,
	googleCallbackUC usecases.HandleGoogleCallbackExecutor,
	googleCompleteUC usecases.CompleteGoogleRegistrationExecutor,
	getProfileUC usecases.GetProfileExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		verifyEmailUC:    verifyEmailUC,
		resendCodeUC:     resendCodeUC,
		googleLoginUC:    googleLoginUC,
		googleCallbackUC: googleCallbackUC,
		googleCompleteUC: googleCompleteUC,
		getProfileUC:     getProfileUC,
		logger:           logger.NewLogger(),
	}
}

type RegisterRequest struct {
	SRCode    string `json:"sr_code" binding:"required,srcode"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Program   string `json:"program" binding:"max=100"`
	YearLevel int    `json:"year_level" binding:"omitempty,min=1,max=6"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterCommand{
		SRCode:    req.SRCode,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Program:   req.Program,
		YearLevel: req.YearLevel,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newAuthResponse(result), "Registration successful, please verify your email")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", newAuthResponse(result))
}

type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.VerifyEmailCommand{
		UserID: userID,
		Code:   req.Code,
	}

	result, err := h.verifyEmailUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", result)
}

// SendVerificationCode handles POST /auth/send-verification-code
func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	userID, _ := utils.AuthenticatedUser(c)
	cmd := usecases.ResendCodeCommand{UserID: userID}

	if err := h.resendCodeUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// GoogleLogin handles GET /auth/google. The OAuth state and PKCE verifier
// are kept in short-lived HttpOnly cookies for the callback to check.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	result, err := h.googleLoginUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, result.State, oauthCookieMaxAge, "/", "", false, true)
	c.SetCookie(oauthVerifierCookie, result.CodeVerifier, oauthCookieMaxAge, "/", "", false, true)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"url": result.URL})
}

// GoogleCallback handles GET /auth/google/callback
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing state or code parameter")
		return
	}

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState != state {
		h.logger.Warnw("oauth state mismatch", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid oauth state")
		return
	}

	codeVerifier, err := c.Cookie(oauthVerifierCookie)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing oauth verifier")
		return
	}

	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)
	c.SetCookie(oauthVerifierCookie, "", -1, "/", "", false, true)

	cmd := usecases.GoogleCallbackCommand{
		Code:         code,
		CodeVerifier: codeVerifier,
	}

	result, err := h.googleCallbackUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.RegistrationRequired {
		utils.SuccessResponse(c, http.StatusOK, "Registration required", gin.H{
			"registration_required": true,
			"pending":               result.Pending,
		})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", newAuthResponse(result.Auth))
}

type CompleteGoogleRegistrationRequest struct {
	GoogleID  string `json:"google_id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	SRCode    string `json:"sr_code" binding:"required,srcode"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Program   string `json:"program" binding:"max=100"`
	YearLevel int    `json:"year_level" binding:"omitempty,min=1,max=6"`
}

// CompleteGoogleRegistration handles POST /auth/google/complete
func (h *AuthHandler) CompleteGoogleRegistration(c *gin.Context) {
	var req CompleteGoogleRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CompleteGoogleRegistrationCommand{
		GoogleID:  req.GoogleID,
		Email:     req.Email,
		SRCode:    req.SRCode,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Program:   req.Program,
		YearLevel: req.YearLevel,
	}

	result, err := h.googleCompleteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, newAuthResponse(result), "Registration completed successfully")
}

// VerifyToken handles GET /auth/verify. Returns the profile of the
// authenticated user, confirming the presented token is still valid.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	userID, _ := utils.AuthenticatedUser(c)

	result, err := h.getProfileUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
