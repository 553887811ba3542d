package notification

import "context"

// Repository defines the interface for notification data operations
type Repository interface {
	// Create persists a notification. Callers run it inside the same
	// transaction as the lifecycle change the notification reports.
	Create(ctx context.Context, notification *Notification) error

	// ListByUser returns the user's notifications newest first, capped at
	// the given limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Notification, error)

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id uint) (*Notification, error)

	// MarkRead flags one notification read. The userID guards against
	// marking another user's notification.
	MarkRead(ctx context.Context, id, userID uint) error

	// MarkAllRead flags every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID uint) error

	// CountUnread returns the user's unread notification count.
	CountUnread(ctx context.Context, userID uint) (int64, error)
}
