package handlers

import (
	"grievance/internal/application/user/dto"
	"grievance/internal/application/user/usecases"
)

// AuthResponse is the JSON shape returned by login and registration.
type AuthResponse struct {
	User                 *dto.UserDTO `json:"user"`
	AccessToken          string       `json:"access_token"`
	TokenType            string       `json:"token_type"`
	ExpiresIn            int64        `json:"expires_in"`
	RequiresVerification bool         `json:"requires_verification,omitempty"`
}

func newAuthResponse(result *usecases.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:                 result.User,
		AccessToken:          result.AccessToken,
		TokenType:            "Bearer",
		ExpiresIn:            result.ExpiresIn,
		RequiresVerification: result.RequiresVerification,
	}
}
