package valueobjects

import "fmt"

type ConcernStatus string

const (
	StatusPending    ConcernStatus = "pending"
	StatusInReview   ConcernStatus = "in-review"
	StatusInProgress ConcernStatus = "in-progress"
	StatusResolved   ConcernStatus = "resolved"
	StatusClosed     ConcernStatus = "closed"
	StatusRejected   ConcernStatus = "rejected"
)

var validConcernStatuses = map[ConcernStatus]bool{
	StatusPending:    true,
	StatusInReview:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusRejected:   true,
}

// Status changes are only gated by enum membership. Any status may follow
// any other, including moving out of resolved/closed/rejected; whether that
// looseness is intentional is an open product question, so it is kept as-is.
func (cs ConcernStatus) String() string {
	return string(cs)
}

func (cs ConcernStatus) IsValid() bool {
	return validConcernStatuses[cs]
}

func (cs ConcernStatus) IsPending() bool {
	return cs == StatusPending
}

func (cs ConcernStatus) IsInReview() bool {
	return cs == StatusInReview
}

func (cs ConcernStatus) IsInProgress() bool {
	return cs == StatusInProgress
}

func (cs ConcernStatus) IsResolved() bool {
	return cs == StatusResolved
}

func (cs ConcernStatus) IsClosed() bool {
	return cs == StatusClosed
}

func (cs ConcernStatus) IsRejected() bool {
	return cs == StatusRejected
}

func NewConcernStatus(s string) (ConcernStatus, error) {
	cs := ConcernStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid concern status: %s", s)
	}
	return cs, nil
}

// AllStatuses returns every valid status value, useful for aggregation queries.
func AllStatuses() []ConcernStatus {
	return []ConcernStatus{
		StatusPending,
		StatusInReview,
		StatusInProgress,
		StatusResolved,
		StatusClosed,
		StatusRejected,
	}
}
