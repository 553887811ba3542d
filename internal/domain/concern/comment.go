package concern

import (
	"fmt"
	"time"
)

type Comment struct {
	id         uint
	concernID  uint
	userID     uint
	text       string
	isInternal bool
	createdAt  time.Time
}

func NewComment(
	concernID uint,
	userID uint,
	text string,
	isInternal bool,
) (*Comment, error) {
	if concernID == 0 {
		return nil, fmt.Errorf("concern ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("comment text exceeds maximum length of 5000 characters")
	}

	return &Comment{
		concernID:  concernID,
		userID:     userID,
		text:       text,
		isInternal: isInternal,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructComment(
	id uint,
	concernID uint,
	userID uint,
	text string,
	isInternal bool,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if concernID == 0 {
		return nil, fmt.Errorf("concern ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:         id,
		concernID:  concernID,
		userID:     userID,
		text:       text,
		isInternal: isInternal,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) ConcernID() uint {
	return c.concernID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Text() string {
	return c.text
}

// IsInternal marks comments visible only to admin users.
func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
