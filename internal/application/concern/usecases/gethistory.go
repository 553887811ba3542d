package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type GetHistoryQuery struct {
	ConcernID   uint
	RequesterID uint
	IsAdmin     bool
}

type GetHistoryUseCase struct {
	concernRepo concern.ConcernRepository
	historyRepo concern.StatusHistoryRepository
	logger      logger.Interface
}

func NewGetHistoryUseCase(
	concernRepo concern.ConcernRepository,
	historyRepo concern.StatusHistoryRepository,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{concernRepo: concernRepo, historyRepo: historyRepo, logger: logger}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, query GetHistoryQuery) ([]*dto.StatusHistoryDTO, error) {
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

	entries, err := uc.historyRepo.ListByConcern(ctx, query.ConcernID)
	if err != nil {
		uc.logger.Errorw("failed to load status history", "concern_id", query.ConcernID, "error", err)
		return nil, err
	}

	dtos := make([]*dto.StatusHistoryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, dto.NewStatusHistoryDTO(entry))
	}
	return dtos, nil
}
