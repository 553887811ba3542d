package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type GetCommentsQuery struct {
	ConcernID   uint
	RequesterID uint
	IsAdmin     bool
}

// GetCommentsUseCase lists a concern's comments. Internal comments stay
// between administrators.
type GetCommentsUseCase struct {
	concernRepo concern.ConcernRepository
	commentRepo concern.CommentRepository
	logger      logger.Interface
}

func NewGetCommentsUseCase(
	concernRepo concern.ConcernRepository,
	commentRepo concern.CommentRepository,
	logger logger.Interface,
) *GetCommentsUseCase {
	return &GetCommentsUseCase{concernRepo: concernRepo, commentRepo: commentRepo, logger: logger}
}

func (uc *GetCommentsUseCase) Execute(ctx context.Context, query GetCommentsQuery) ([]*dto.CommentDTO, error) {
	if query.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}

	c, err := uc.concernRepo.GetByID(ctx, query.ConcernID)
	if err != nil {
		return nil, err
	}
	if !c.CanBeViewedBy(query.RequesterID, query.IsAdmin) {
		return nil, errors.NewForbiddenError("you do not have access to this concern")
	}

	comments, err := uc.commentRepo.ListByConcern(ctx, query.ConcernID, query.IsAdmin)
	if err != nil {
		uc.logger.Errorw("failed to load comments", "concern_id", query.ConcernID, "error", err)
		return nil, err
	}

	dtos := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		dtos = append(dtos, dto.NewCommentDTO(comment))
	}
	return dtos, nil
}
