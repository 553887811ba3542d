package notification

import (
	"fmt"
	"time"
)

// NotificationType identifies the lifecycle event a notification reports.
type NotificationType string

const (
	TypeConcernCreated  NotificationType = "concern_created"
	TypeStatusChanged   NotificationType = "status_changed"
	TypeConcernAssigned NotificationType = "concern_assigned"
	TypeConcernResolved NotificationType = "concern_resolved"
	TypeCommentAdded    NotificationType = "comment_added"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeConcernCreated:  true,
	TypeStatusChanged:   true,
	TypeConcernAssigned: true,
	TypeConcernResolved: true,
	TypeCommentAdded:    true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// Notification is an in-app message for one user. Rows are written in the
// same transaction as the lifecycle change they report.
type Notification struct {
	id               uint
	userID           uint
	concernID        *uint
	notificationType NotificationType
	title            string
	message          string
	isRead           bool
	readAt           *time.Time
	createdAt        time.Time
}

func NewNotification(userID uint, notificationType NotificationType, title, message string) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	concernID *uint,
	notificationType NotificationType,
	title, message string,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		id:               id,
		userID:           userID,
		concernID:        concernID,
		notificationType: notificationType,
		title:            title,
		message:          message,
		isRead:           isRead,
		readAt:           readAt,
		createdAt:        createdAt,
	}, nil
}

func (n *Notification) ID() uint               { return n.id }
func (n *Notification) UserID() uint           { return n.userID }
func (n *Notification) ConcernID() *uint       { return n.concernID }
func (n *Notification) Type() NotificationType { return n.notificationType }
func (n *Notification) Title() string          { return n.title }
func (n *Notification) Message() string        { return n.message }
func (n *Notification) IsRead() bool           { return n.isRead }
func (n *Notification) ReadAt() *time.Time     { return n.readAt }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// SetConcernID links the notification to the concern it reports on.
func (n *Notification) SetConcernID(concernID uint) {
	n.concernID = &concernID
}

// MarkRead flags the notification as read. Rereading keeps the original
// read timestamp.
func (n *Notification) MarkRead() {
	if n.isRead {
		return
	}
	now := time.Now()
	n.isRead = true
	n.readAt = &now
}
