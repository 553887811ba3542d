package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Notification list cap
	MaxNotificationsPerFetch = 50

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers         = "users"
	TableConcerns      = "concerns"
	TableStatusHistory = "concern_status_history"
	TableComments      = "comments"
	TableNotifications = "notifications"
	TableCategories    = "concern_categories"
	TableOffices       = "offices"

	// Attachment upload limits
	MaxAttachmentBytes = 5 * 1024 * 1024
)

// AllowedAttachmentExtensions lists the file extensions accepted for
// concern attachments.
var AllowedAttachmentExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}
