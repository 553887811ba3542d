package concern

import (
	"context"

	vo "grievance/internal/domain/concern/valueobjects"
)

// ConcernFilter narrows admin-side listings. A nil field means "no filter",
// so every filtered result set is a subset of the unfiltered one.
type ConcernFilter struct {
	Status     *vo.ConcernStatus
	CategoryID *uint
	Priority   *vo.Priority
	StudentID  *uint
	Page       int
	PageSize   int
}

// Statistics is a read-only projection of concern counts.
type Statistics struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InReview   int64 `json:"in_review"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
	Rejected   int64 `json:"rejected"`
	Urgent     int64 `json:"urgent"`
	High       int64 `json:"high"`
}

type ConcernRepository interface {
	// Save persists a new concern, assigning its ID and ticket number
	// atomically within one transaction.
	Save(ctx context.Context, c *Concern) error
	Update(ctx context.Context, c *Concern) error
	GetByID(ctx context.Context, id uint) (*Concern, error)
	GetByTicketNumber(ctx context.Context, number string) (*Concern, error)
	GetByStudent(ctx context.Context, studentID uint) ([]*Concern, error)
	List(ctx context.Context, filter ConcernFilter) ([]*Concern, int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
}

type StatusHistoryRepository interface {
	// Append inserts an audit row. History is append-only; there is no
	// update or delete.
	Append(ctx context.Context, entry *StatusHistoryEntry) error
	ListByConcern(ctx context.Context, concernID uint) ([]*StatusHistoryEntry, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// ListByConcern returns comments oldest-first. Internal comments are
	// omitted unless includeInternal is set.
	ListByConcern(ctx context.Context, concernID uint, includeInternal bool) ([]*Comment, error)
}
