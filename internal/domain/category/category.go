package category

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies concerns. Categories are soft deleted so that
// historical concerns keep a valid reference.
type Category struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name cannot exceed 100 characters")
	}

	now := time.Now()
	return &Category{
		name:        name,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(id uint, name, description string, isActive bool, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:          id,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Update(name, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("category name cannot exceed 100 characters")
	}

	c.name = name
	c.description = description
	c.updatedAt = time.Now()
	return nil
}

// Deactivate soft deletes the category. Existing concerns keep referencing it.
func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = time.Now()
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = time.Now()
}
