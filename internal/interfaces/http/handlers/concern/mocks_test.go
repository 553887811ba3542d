package concern

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/application/concern/usecases"
	domainconcern "grievance/internal/domain/concern"
)

type mockCreateConcernExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.CreateConcernCommand) (*usecases.CreateConcernResult, error)
}

func (m *mockCreateConcernExecutor) Execute(ctx context.Context, cmd usecases.CreateConcernCommand) (*usecases.CreateConcernResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockGetConcernExecutor struct {
	executeFn func(ctx context.Context, query usecases.GetConcernQuery) (*dto.ConcernDTO, error)
}

func (m *mockGetConcernExecutor) Execute(ctx context.Context, query usecases.GetConcernQuery) (*dto.ConcernDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockListConcernsExecutor struct {
	executeFn func(ctx context.Context, query usecases.ListConcernsQuery) (*usecases.ListConcernsResult, error)
}

func (m *mockListConcernsExecutor) Execute(ctx context.Context, query usecases.ListConcernsQuery) (*usecases.ListConcernsResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockUpdateStatusExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.UpdateStatusCommand) (*usecases.UpdateStatusResult, error)
}

func (m *mockUpdateStatusExecutor) Execute(ctx context.Context, cmd usecases.UpdateStatusCommand) (*usecases.UpdateStatusResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockUpdatePriorityExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.UpdatePriorityCommand) (*dto.ConcernDTO, error)
}

func (m *mockUpdatePriorityExecutor) Execute(ctx context.Context, cmd usecases.UpdatePriorityCommand) (*dto.ConcernDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockAssignOfficeExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.AssignOfficeCommand) (*dto.ConcernDTO, error)
}

func (m *mockAssignOfficeExecutor) Execute(ctx context.Context, cmd usecases.AssignOfficeCommand) (*dto.ConcernDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockResolveConcernExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ResolveConcernCommand) (*dto.ConcernDTO, error)
}

func (m *mockResolveConcernExecutor) Execute(ctx context.Context, cmd usecases.ResolveConcernCommand) (*dto.ConcernDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockAddCommentExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error)
}

func (m *mockAddCommentExecutor) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockGetCommentsExecutor struct {
	executeFn func(ctx context.Context, query usecases.GetCommentsQuery) ([]*dto.CommentDTO, error)
}

func (m *mockGetCommentsExecutor) Execute(ctx context.Context, query usecases.GetCommentsQuery) ([]*dto.CommentDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockGetHistoryExecutor struct {
	executeFn func(ctx context.Context, query usecases.GetHistoryQuery) ([]*dto.StatusHistoryDTO, error)
}

func (m *mockGetHistoryExecutor) Execute(ctx context.Context, query usecases.GetHistoryQuery) ([]*dto.StatusHistoryDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockGetStatisticsExecutor struct {
	executeFn func(ctx context.Context) (*domainconcern.Statistics, error)
}

func (m *mockGetStatisticsExecutor) Execute(ctx context.Context) (*domainconcern.Statistics, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx)
	}
	return nil, nil
}
