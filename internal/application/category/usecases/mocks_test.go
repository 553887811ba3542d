package usecases

import (
	"context"

	"grievance/internal/domain/category"
	"grievance/internal/shared/logger"
)

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

type mockCategoryRepository struct {
	CreateFunc       func(ctx context.Context, c *category.Category) error
	GetByIDFunc      func(ctx context.Context, id uint) (*category.Category, error)
	ListFunc         func(ctx context.Context, includeInactive bool) ([]*category.Category, error)
	UpdateFunc       func(ctx context.Context, c *category.Category) error
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context, includeInactive bool) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

type mockOfficeRepository struct {
	ListFunc func(ctx context.Context, includeInactive bool) ([]*category.Office, error)
}

func (m *mockOfficeRepository) Create(ctx context.Context, o *category.Office) error { return nil }

func (m *mockOfficeRepository) GetByID(ctx context.Context, id uint) (*category.Office, error) {
	return nil, nil
}

func (m *mockOfficeRepository) List(ctx context.Context, includeInactive bool) ([]*category.Office, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *mockOfficeRepository) Update(ctx context.Context, o *category.Office) error { return nil }

type mockConcernCounter struct {
	CountByCategoryFunc func(ctx context.Context, categoryID uint) (int64, error)
}

func (m *mockConcernCounter) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, categoryID)
	}
	return 0, nil
}
