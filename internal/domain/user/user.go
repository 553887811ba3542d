package user

import (
	"fmt"
	"time"

	vo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/shared/authorization"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id                    uint
	srCode                *vo.SRCode
	email                 *vo.Email
	passwordHash          string
	firstName             string
	lastName              string
	program               string
	yearLevel             int
	role                  authorization.UserRole
	googleID              *string
	emailVerified         bool
	verificationCode      *string
	verificationExpiresAt *time.Time
	isActive              bool
	createdAt             time.Time
	updatedAt             time.Time
}

// NewUser creates a new student account pending email verification.
func NewUser(srCode *vo.SRCode, email *vo.Email, firstName, lastName, program string, yearLevel int) (*User, error) {
	if srCode == nil {
		return nil, fmt.Errorf("SR code is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if yearLevel < 1 || yearLevel > 4 {
		return nil, fmt.Errorf("year level must be between 1 and 4")
	}

	now := time.Now()
	return &User{
		srCode:    srCode,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		program:   program,
		yearLevel: yearLevel,
		role:      authorization.RoleStudent,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewGoogleUser creates a student account from a Google sign-in. The email
// arrives verified by the provider so no verification code is issued.
func NewGoogleUser(srCode *vo.SRCode, email *vo.Email, googleID, firstName, lastName, program string, yearLevel int) (*User, error) {
	if googleID == "" {
		return nil, fmt.Errorf("google ID is required")
	}

	u, err := NewUser(srCode, email, firstName, lastName, program, yearLevel)
	if err != nil {
		return nil, err
	}

	u.googleID = &googleID
	u.emailVerified = true
	return u, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	srCode *vo.SRCode,
	email *vo.Email,
	passwordHash string,
	firstName, lastName, program string,
	yearLevel int,
	role authorization.UserRole,
	googleID *string,
	emailVerified bool,
	verificationCode *string,
	verificationExpiresAt *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if srCode == nil {
		return nil, fmt.Errorf("SR code is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                    id,
		srCode:                srCode,
		email:                 email,
		passwordHash:          passwordHash,
		firstName:             firstName,
		lastName:              lastName,
		program:               program,
		yearLevel:             yearLevel,
		role:                  role,
		googleID:              googleID,
		emailVerified:         emailVerified,
		verificationCode:      verificationCode,
		verificationExpiresAt: verificationExpiresAt,
		isActive:              isActive,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}, nil
}

func (u *User) ID() uint                          { return u.id }
func (u *User) SRCode() *vo.SRCode                { return u.srCode }
func (u *User) Email() *vo.Email                  { return u.email }
func (u *User) PasswordHash() string              { return u.passwordHash }
func (u *User) FirstName() string                 { return u.firstName }
func (u *User) LastName() string                  { return u.lastName }
func (u *User) Program() string                   { return u.program }
func (u *User) YearLevel() int                    { return u.yearLevel }
func (u *User) Role() authorization.UserRole      { return u.role }
func (u *User) GoogleID() *string                 { return u.googleID }
func (u *User) IsEmailVerified() bool             { return u.emailVerified }
func (u *User) VerificationCode() *string         { return u.verificationCode }
func (u *User) VerificationExpiresAt() *time.Time { return u.verificationExpiresAt }
func (u *User) IsActive() bool                    { return u.isActive }
func (u *User) CreatedAt() time.Time              { return u.createdAt }
func (u *User) UpdatedAt() time.Time              { return u.updatedAt }

// FullName returns the display name used in notifications and emails.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// SetID sets the aggregate ID after persistence. IDs are write-once.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash stores an already hashed password. Hashing lives in the
// infrastructure layer.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// IssueVerificationCode stores a fresh email verification code with its expiry.
func (u *User) IssueVerificationCode(code string, expiresAt time.Time) error {
	if code == "" {
		return fmt.Errorf("verification code cannot be empty")
	}
	u.verificationCode = &code
	u.verificationExpiresAt = &expiresAt
	u.updatedAt = time.Now()
	return nil
}

// VerifyEmail checks the supplied code against the stored one and marks the
// email verified on success. The stored code is cleared either way it matches.
func (u *User) VerifyEmail(code string, now time.Time) error {
	if u.emailVerified {
		return fmt.Errorf("email already verified")
	}
	if u.verificationCode == nil {
		return fmt.Errorf("no verification code issued")
	}
	if u.verificationExpiresAt != nil && now.After(*u.verificationExpiresAt) {
		return fmt.Errorf("verification code expired")
	}
	if *u.verificationCode != code {
		return fmt.Errorf("verification code does not match")
	}

	u.emailVerified = true
	u.verificationCode = nil
	u.verificationExpiresAt = nil
	u.updatedAt = time.Now()
	return nil
}

// LinkGoogleAccount attaches a Google subject ID to an existing account.
func (u *User) LinkGoogleAccount(googleID string) error {
	if googleID == "" {
		return fmt.Errorf("google ID is required")
	}
	if u.googleID != nil && *u.googleID != googleID {
		return fmt.Errorf("account already linked to a different google ID")
	}
	u.googleID = &googleID
	u.emailVerified = true
	u.updatedAt = time.Now()
	return nil
}

// UpdateProfile changes the fields a student may edit about themselves.
func (u *User) UpdateProfile(firstName, lastName, program string, yearLevel int) error {
	if firstName == "" {
		return fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return fmt.Errorf("last name is required")
	}
	if yearLevel < 1 || yearLevel > 4 {
		return fmt.Errorf("year level must be between 1 and 4")
	}

	u.firstName = firstName
	u.lastName = lastName
	u.program = program
	u.yearLevel = yearLevel
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole switches the account between student and admin.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// CanLogin reports whether password authentication may proceed.
func (u *User) CanLogin() bool {
	return u.isActive && u.emailVerified
}
