package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/shared/constants"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type ListConcernsQuery struct {
	RequesterID uint
	IsAdmin     bool
	Status      string
	CategoryID  uint
	Priority    string
	Page        int
	PageSize    int
}

type ListConcernsResult struct {
	Concerns []*dto.ConcernDTO
	Total    int64
	Page     int
	PageSize int
}

// ListConcernsUseCase returns concerns scoped by role: students see their
// own, admins see everything with optional filters.
type ListConcernsUseCase struct {
	concernRepo concern.ConcernRepository
	logger      logger.Interface
}

func NewListConcernsUseCase(concernRepo concern.ConcernRepository, logger logger.Interface) *ListConcernsUseCase {
	return &ListConcernsUseCase{concernRepo: concernRepo, logger: logger}
}

func (uc *ListConcernsUseCase) Execute(ctx context.Context, query ListConcernsQuery) (*ListConcernsResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	filter := concern.ConcernFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if query.Status != "" {
		status := vo.ConcernStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status: " + query.Status)
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority: " + query.Priority)
		}
		filter.Priority = &priority
	}
	if query.CategoryID != 0 {
		filter.CategoryID = &query.CategoryID
	}
	if !query.IsAdmin {
		filter.StudentID = &query.RequesterID
	}

	concerns, total, err := uc.concernRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list concerns", "error", err)
		return nil, err
	}

	dtos := make([]*dto.ConcernDTO, 0, len(concerns))
	for _, c := range concerns {
		dtos = append(dtos, dto.NewConcernDTO(c))
	}

	return &ListConcernsResult{
		Concerns: dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
