package usecases

import (
	"context"
	"fmt"

	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/domain/notification"
	"grievance/internal/domain/user"
	"grievance/internal/shared/logger"
)

// EmailSender delivers lifecycle emails. The SMTP implementation retries
// internally; callers treat delivery as best effort.
type EmailSender interface {
	SendConcernCreatedEmail(to, studentName, ticketNumber, title string) error
	SendStatusChangedEmail(to, studentName, ticketNumber, oldStatus, newStatus, remarks string) error
	SendConcernAssignedEmail(to, studentName, ticketNumber, officeName string) error
	SendConcernResolvedEmail(to, studentName, ticketNumber, notes string) error
	SendCommentEmail(to, studentName, ticketNumber, commentText string) error
}

// LifecycleNotifier fans a concern lifecycle event out to in-app
// notifications and email. Record* methods write notification rows and are
// called inside the lifecycle transaction so the row commits or rolls back
// with the change itself. Email* methods fire a goroutine after commit and
// never fail the operation.
type LifecycleNotifier interface {
	RecordCreated(ctx context.Context, c *concern.Concern) error
	RecordStatusChanged(ctx context.Context, c *concern.Concern, oldStatus, newStatus vo.ConcernStatus) error
	RecordAssigned(ctx context.Context, c *concern.Concern, officeName string) error
	RecordResolved(ctx context.Context, c *concern.Concern) error
	RecordCommentAdded(ctx context.Context, c *concern.Concern, recipientID uint, authorIsAdmin bool) error

	EmailCreated(c *concern.Concern)
	EmailStatusChanged(c *concern.Concern, oldStatus, newStatus vo.ConcernStatus, remarks string)
	EmailAssigned(c *concern.Concern, officeName string)
	EmailResolved(c *concern.Concern)
	EmailComment(c *concern.Concern, commentText string)
}

type notifier struct {
	notificationRepo notification.Repository
	userRepo         user.Repository
	emailSender      EmailSender
	logger           logger.Interface
}

func NewLifecycleNotifier(
	notificationRepo notification.Repository,
	userRepo user.Repository,
	emailSender EmailSender,
	logger logger.Interface,
) LifecycleNotifier {
	return &notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		logger:           logger,
	}
}

func (n *notifier) record(ctx context.Context, userID uint, concernID uint, typ notification.NotificationType, title, message string) error {
	note, err := notification.NewNotification(userID, typ, title, message)
	if err != nil {
		return err
	}
	note.SetConcernID(concernID)
	return n.notificationRepo.Create(ctx, note)
}

func (n *notifier) RecordCreated(ctx context.Context, c *concern.Concern) error {
	return n.record(ctx, c.StudentID(), c.ID(), notification.TypeConcernCreated,
		fmt.Sprintf("Concern %s submitted", c.TicketNumber()),
		fmt.Sprintf("Your concern %q has been received and assigned ticket number %s.", c.Title(), c.TicketNumber()))
}

func (n *notifier) RecordStatusChanged(ctx context.Context, c *concern.Concern, oldStatus, newStatus vo.ConcernStatus) error {
	return n.record(ctx, c.StudentID(), c.ID(), notification.TypeStatusChanged,
		fmt.Sprintf("Concern %s updated", c.TicketNumber()),
		fmt.Sprintf("Status changed from %s to %s.", oldStatus, newStatus))
}

func (n *notifier) RecordAssigned(ctx context.Context, c *concern.Concern, officeName string) error {
	return n.record(ctx, c.StudentID(), c.ID(), notification.TypeConcernAssigned,
		fmt.Sprintf("Concern %s assigned", c.TicketNumber()),
		fmt.Sprintf("Your concern has been assigned to %s.", officeName))
}

func (n *notifier) RecordResolved(ctx context.Context, c *concern.Concern) error {
	return n.record(ctx, c.StudentID(), c.ID(), notification.TypeConcernResolved,
		fmt.Sprintf("Concern %s resolved", c.TicketNumber()),
		c.ResolutionNotes())
}

func (n *notifier) RecordCommentAdded(ctx context.Context, c *concern.Concern, recipientID uint, authorIsAdmin bool) error {
	who := "A student"
	if authorIsAdmin {
		who = "An administrator"
	}
	return n.record(ctx, recipientID, c.ID(), notification.TypeCommentAdded,
		fmt.Sprintf("New comment on %s", c.TicketNumber()),
		fmt.Sprintf("%s commented on concern %s.", who, c.TicketNumber()))
}

// dispatch resolves the owning student's address and sends in a goroutine.
// Anonymous concerns never produce email.
func (n *notifier) dispatch(c *concern.Concern, send func(to, name string) error) {
	if c.IsAnonymous() {
		return
	}

	go func() {
		owner, err := n.userRepo.GetByID(context.Background(), c.StudentID())
		if err != nil {
			n.logger.Warnw("skipping lifecycle email, owner lookup failed",
				"concern_id", c.ID(), "student_id", c.StudentID(), "error", err)
			return
		}
		if err := send(owner.Email().String(), owner.FullName()); err != nil {
			n.logger.Errorw("lifecycle email delivery failed",
				"concern_id", c.ID(), "ticket_number", c.TicketNumber(), "error", err)
		}
	}()
}

func (n *notifier) EmailCreated(c *concern.Concern) {
	n.dispatch(c, func(to, name string) error {
		return n.emailSender.SendConcernCreatedEmail(to, name, c.TicketNumber(), c.Title())
	})
}

func (n *notifier) EmailStatusChanged(c *concern.Concern, oldStatus, newStatus vo.ConcernStatus, remarks string) {
	n.dispatch(c, func(to, name string) error {
		return n.emailSender.SendStatusChangedEmail(to, name, c.TicketNumber(), oldStatus.String(), newStatus.String(), remarks)
	})
}

func (n *notifier) EmailAssigned(c *concern.Concern, officeName string) {
	n.dispatch(c, func(to, name string) error {
		return n.emailSender.SendConcernAssignedEmail(to, name, c.TicketNumber(), officeName)
	})
}

func (n *notifier) EmailResolved(c *concern.Concern) {
	n.dispatch(c, func(to, name string) error {
		return n.emailSender.SendConcernResolvedEmail(to, name, c.TicketNumber(), c.ResolutionNotes())
	})
}

func (n *notifier) EmailComment(c *concern.Concern, commentText string) {
	n.dispatch(c, func(to, name string) error {
		return n.emailSender.SendCommentEmail(to, name, c.TicketNumber(), commentText)
	})
}
