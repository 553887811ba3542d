package category

import (
	"fmt"
	"strings"
	"time"
)

// Office is an administrative unit that concerns get routed to.
type Office struct {
	id          uint
	name        string
	description string
	email       string
	phone       string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffice(name, description, email, phone string) (*Office, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("office name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("office name cannot exceed 100 characters")
	}

	now := time.Now()
	return &Office{
		name:        name,
		description: description,
		email:       email,
		phone:       phone,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOffice(id uint, name, description, email, phone string, isActive bool, createdAt, updatedAt time.Time) (*Office, error) {
	if id == 0 {
		return nil, fmt.Errorf("office ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("office name is required")
	}

	return &Office{
		id:          id,
		name:        name,
		description: description,
		email:       email,
		phone:       phone,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (o *Office) ID() uint             { return o.id }
func (o *Office) Name() string         { return o.name }
func (o *Office) Description() string  { return o.description }
func (o *Office) Email() string        { return o.email }
func (o *Office) Phone() string        { return o.phone }
func (o *Office) IsActive() bool       { return o.isActive }
func (o *Office) CreatedAt() time.Time { return o.createdAt }
func (o *Office) UpdatedAt() time.Time { return o.updatedAt }

func (o *Office) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("office ID already set")
	}
	if id == 0 {
		return fmt.Errorf("office ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Office) Update(name, description, email, phone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("office name is required")
	}

	o.name = name
	o.description = description
	o.email = email
	o.phone = phone
	o.updatedAt = time.Now()
	return nil
}

func (o *Office) Deactivate() {
	o.isActive = false
	o.updatedAt = time.Now()
}
