package dto

import (
	"time"

	"grievance/internal/domain/user"
)

// UserDTO is the read model handed to the HTTP layer. Password hashes and
// verification codes never leave the application layer.
type UserDTO struct {
	ID            uint      `json:"id"`
	SRCode        string    `json:"sr_code"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Program       string    `json:"program,omitempty"`
	YearLevel     int       `json:"year_level"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:            u.ID(),
		SRCode:        u.SRCode().String(),
		Email:         u.Email().String(),
		FirstName:     u.FirstName(),
		LastName:      u.LastName(),
		Program:       u.Program(),
		YearLevel:     u.YearLevel(),
		Role:          u.Role().String(),
		EmailVerified: u.IsEmailVerified(),
		IsActive:      u.IsActive(),
		CreatedAt:     u.CreatedAt(),
	}
}
