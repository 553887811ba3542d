package usecases

import (
	"context"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	"grievance/internal/shared/constants"
	"grievance/internal/shared/logger"
)

type ListUsersQuery struct {
	Role     string
	Program  string
	Search   string
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []*dto.UserDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
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

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     page,
		PageSize: pageSize,
		Role:     query.Role,
		Program:  query.Program,
		Search:   query.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, dto.NewUserDTO(u))
	}

	return &ListUsersResult{
		Users:    dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
