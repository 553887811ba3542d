package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"grievance/internal/shared/authorization"
	"grievance/internal/infrastructure/auth"
	"grievance/internal/infrastructure/persistence/models"
)

// SeedAdminUser creates an initial administrator account if one does not
// already exist for the given email. The password is bcrypt hashed.
func SeedAdminUser(db *gorm.DB, srCode, email, password, firstName, lastName string) error {
	hasher := auth.NewBcryptPasswordHasher(0)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.UserModel{
		SRCode:        srCode,
		Email:         email,
		PasswordHash:  hash,
		FirstName:     firstName,
		LastName:      lastName,
		Role:          string(authorization.RoleAdmin),
		EmailVerified: true,
		IsActive:      true,
	}

	if err := db.FirstOrCreate(&admin, models.UserModel{Email: email}).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
