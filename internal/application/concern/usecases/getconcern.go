package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type GetConcernQuery struct {
	ConcernID   uint
	RequesterID uint
	IsAdmin     bool
}

type GetConcernUseCase struct {
	concernRepo concern.ConcernRepository
	logger      logger.Interface
}

func NewGetConcernUseCase(concernRepo concern.ConcernRepository, logger logger.Interface) *GetConcernUseCase {
	return &GetConcernUseCase{concernRepo: concernRepo, logger: logger}
}

func (uc *GetConcernUseCase) Execute(ctx context.Context, query GetConcernQuery) (*dto.ConcernDTO, error) {
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

	return dto.NewConcernDTO(c), nil
}
