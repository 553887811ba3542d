package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/domain/notification"
	"grievance/internal/domain/user"
	uservo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/shared/authorization"
)

type capturingNotificationRepo struct {
	notification.Repository
	created []*notification.Notification
}

func (r *capturingNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func notifierTestUser(t *testing.T) *user.User {
	t.Helper()
	srCode, err := uservo.NewSRCode("21-04567")
	require.NoError(t, err)
	email, err := uservo.NewEmail("juan@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(1, srCode, email, "hash", "Juan", "Dela Cruz", "BSCS", 3,
		authorization.RoleStudent, nil, true, nil, nil, true, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestNotifier_RecordStatusChanged(t *testing.T) {
	repo := &capturingNotificationRepo{}
	n := NewLifecycleNotifier(repo, &mockUserRepository{}, &mockEmailSender{}, &mockLogger{})
	c := testConcern(t, vo.StatusInProgress)

	err := n.RecordStatusChanged(context.Background(), c, vo.StatusPending, vo.StatusInProgress)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	note := repo.created[0]
	assert.Equal(t, c.StudentID(), note.UserID())
	assert.Equal(t, notification.TypeStatusChanged, note.Type())
	require.NotNil(t, note.ConcernID())
	assert.Equal(t, c.ID(), *note.ConcernID())
	assert.Contains(t, note.Message(), "pending")
	assert.Contains(t, note.Message(), "in-progress")
}

func TestNotifier_EmailStatusChanged(t *testing.T) {
	sent := make(chan string, 1)
	sender := &mockEmailSender{
		StatusFunc: func(to, studentName, ticketNumber, oldStatus, newStatus, remarks string) error {
			sent <- to
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return notifierTestUser(t), nil
		},
	}
	n := NewLifecycleNotifier(&capturingNotificationRepo{}, userRepo, sender, &mockLogger{})

	n.EmailStatusChanged(testConcern(t, vo.StatusInProgress), vo.StatusPending, vo.StatusInProgress, "")

	select {
	case to := <-sent:
		assert.Equal(t, "juan@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email dispatch")
	}
}

func TestNotifier_EmailSkippedForAnonymousConcern(t *testing.T) {
	sent := make(chan struct{}, 1)
	sender := &mockEmailSender{
		CreatedFunc: func(to, studentName, ticketNumber, title string) error {
			sent <- struct{}{}
			return nil
		},
	}
	n := NewLifecycleNotifier(&capturingNotificationRepo{}, &mockUserRepository{}, sender, &mockLogger{})

	created := time.Now()
	c, err := concern.ReconstructConcern(
		10, "GRV-2025-00010", 1, 2, "",
		"Broken AC", "desc",
		nil, nil, vo.StatusPending, vo.PriorityNormal,
		true, "", nil, nil, "", nil, nil,
		created, created,
	)
	require.NoError(t, err)

	n.EmailCreated(c)

	select {
	case <-sent:
		t.Fatal("anonymous concerns must not email")
	case <-time.After(100 * time.Millisecond):
	}
}
