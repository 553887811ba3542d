package concern

import (
	"fmt"
	"time"

	vo "grievance/internal/domain/concern/valueobjects"
)

// StatusHistoryEntry is an immutable audit row. Entries are appended when a
// concern is created, when its status changes and when it is resolved; they
// are never updated or deleted.
type StatusHistoryEntry struct {
	id        uint
	concernID uint
	oldStatus *vo.ConcernStatus
	newStatus vo.ConcernStatus
	changedBy uint
	remarks   string
	createdAt time.Time
}

func NewStatusHistoryEntry(
	concernID uint,
	oldStatus *vo.ConcernStatus,
	newStatus vo.ConcernStatus,
	changedBy uint,
	remarks string,
) (*StatusHistoryEntry, error) {
	if concernID == 0 {
		return nil, fmt.Errorf("concern ID is required")
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status: %s", newStatus)
	}
	if oldStatus != nil && !oldStatus.IsValid() {
		return nil, fmt.Errorf("invalid old status: %s", *oldStatus)
	}
	if changedBy == 0 {
		return nil, fmt.Errorf("changed by user ID is required")
	}

	return &StatusHistoryEntry{
		concernID: concernID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		remarks:   remarks,
		createdAt: time.Now(),
	}, nil
}

func ReconstructStatusHistoryEntry(
	id uint,
	concernID uint,
	oldStatus *vo.ConcernStatus,
	newStatus vo.ConcernStatus,
	changedBy uint,
	remarks string,
	createdAt time.Time,
) (*StatusHistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	if concernID == 0 {
		return nil, fmt.Errorf("concern ID is required")
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status: %s", newStatus)
	}

	return &StatusHistoryEntry{
		id:        id,
		concernID: concernID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		remarks:   remarks,
		createdAt: createdAt,
	}, nil
}

func (h *StatusHistoryEntry) ID() uint {
	return h.id
}

func (h *StatusHistoryEntry) ConcernID() uint {
	return h.concernID
}

// OldStatus is nil for the entry written at concern creation.
func (h *StatusHistoryEntry) OldStatus() *vo.ConcernStatus {
	return h.oldStatus
}

func (h *StatusHistoryEntry) NewStatus() vo.ConcernStatus {
	return h.newStatus
}

func (h *StatusHistoryEntry) ChangedByID() uint {
	return h.changedBy
}

func (h *StatusHistoryEntry) Remarks() string {
	return h.remarks
}

func (h *StatusHistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}

func (h *StatusHistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}
