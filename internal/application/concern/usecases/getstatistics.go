package usecases

import (
	"context"

	"grievance/internal/domain/concern"
	"grievance/internal/shared/logger"
)

// GetStatisticsUseCase aggregates concern counts for the admin dashboard.
type GetStatisticsUseCase struct {
	concernRepo concern.ConcernRepository
	logger      logger.Interface
}

func NewGetStatisticsUseCase(concernRepo concern.ConcernRepository, logger logger.Interface) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{concernRepo: concernRepo, logger: logger}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*concern.Statistics, error) {
	stats, err := uc.concernRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load concern statistics", "error", err)
		return nil, err
	}
	return stats, nil
}
