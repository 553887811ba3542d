package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type AddCommentCommand struct {
	ConcernID     uint
	AuthorID      uint
	AuthorIsAdmin bool
	Text          string
	IsInternal    bool
}

type AddCommentUseCase struct {
	concernRepo concern.ConcernRepository
	commentRepo concern.CommentRepository
	notifier    LifecycleNotifier
	tx          Transactor
	logger      logger.Interface
}

func NewAddCommentUseCase(
	concernRepo concern.ConcernRepository,
	commentRepo concern.CommentRepository,
	notifier LifecycleNotifier,
	tx Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		concernRepo: concernRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "concern_id", cmd.ConcernID, "author_id", cmd.AuthorID)

	if cmd.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}
	if cmd.IsInternal && !cmd.AuthorIsAdmin {
		return nil, errors.NewForbiddenError("only administrators can post internal comments")
	}

	c, err := uc.concernRepo.GetByID(ctx, cmd.ConcernID)
	if err != nil {
		return nil, err
	}

	if !c.CanBeViewedBy(cmd.AuthorID, cmd.AuthorIsAdmin) {
		return nil, errors.NewForbiddenError("you do not have access to this concern")
	}

	comment, err := concern.NewComment(cmd.ConcernID, cmd.AuthorID, cmd.Text, cmd.IsInternal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Internal comments are invisible to students so they produce no
	// notification at all.
	recipientID := uc.commentRecipient(c, cmd)

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}
		if recipientID == 0 {
			return nil
		}
		return uc.notifier.RecordCommentAdded(txCtx, c, recipientID, cmd.AuthorIsAdmin)
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "concern_id", cmd.ConcernID, "error", err)
		return nil, err
	}

	// Students are emailed about admin replies only.
	if recipientID != 0 && cmd.AuthorIsAdmin {
		uc.notifier.EmailComment(c, cmd.Text)
	}

	return dto.NewCommentDTO(comment), nil
}

// commentRecipient picks who gets notified: the owning student when an admin
// comments, the assigned admin when the student comments. Unassigned concerns
// notify nobody on student comments.
func (uc *AddCommentUseCase) commentRecipient(c *concern.Concern, cmd AddCommentCommand) uint {
	if cmd.IsInternal {
		return 0
	}
	if cmd.AuthorIsAdmin {
		return c.StudentID()
	}
	if admin := c.AssignedAdminID(); admin != nil {
		return *admin
	}
	return 0
}
