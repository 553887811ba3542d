package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetBySRCode retrieves a user by student registration code
	GetBySRCode(ctx context.Context, srCode string) (*User, error)

	// GetByGoogleID retrieves a user by Google subject ID
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete hard deletes a user together with their concerns, comments,
	// notifications and status history entries.
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByEmail checks if a user exists by email
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsBySRCode checks if a user exists by student registration code
	ExistsBySRCode(ctx context.Context, srCode string) (bool, error)

	// ListAdmins retrieves every active admin account.
	ListAdmins(ctx context.Context) ([]*User, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Role     string `json:"role,omitempty"`
	Program  string `json:"program,omitempty"`
	Search   string `json:"search,omitempty"`
}
