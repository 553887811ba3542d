package category

import "context"

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	// List returns categories, optionally including deactivated ones.
	List(ctx context.Context, includeInactive bool) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// OfficeRepository defines the interface for office data operations
type OfficeRepository interface {
	Create(ctx context.Context, office *Office) error
	GetByID(ctx context.Context, id uint) (*Office, error)
	List(ctx context.Context, includeInactive bool) ([]*Office, error)
	Update(ctx context.Context, office *Office) error
}
