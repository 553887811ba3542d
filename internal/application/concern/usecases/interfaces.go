package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
)

// Transactor runs a function inside a database transaction. The wrapped
// context carries the transaction down into the repositories.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateConcernExecutor interface {
	Execute(ctx context.Context, cmd CreateConcernCommand) (*CreateConcernResult, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error)
}

type AssignOfficeExecutor interface {
	Execute(ctx context.Context, cmd AssignOfficeCommand) (*dto.ConcernDTO, error)
}

type UpdatePriorityExecutor interface {
	Execute(ctx context.Context, cmd UpdatePriorityCommand) (*dto.ConcernDTO, error)
}

type ResolveConcernExecutor interface {
	Execute(ctx context.Context, cmd ResolveConcernCommand) (*dto.ConcernDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type GetConcernExecutor interface {
	Execute(ctx context.Context, query GetConcernQuery) (*dto.ConcernDTO, error)
}

type ListConcernsExecutor interface {
	Execute(ctx context.Context, query ListConcernsQuery) (*ListConcernsResult, error)
}

type GetHistoryExecutor interface {
	Execute(ctx context.Context, query GetHistoryQuery) ([]*dto.StatusHistoryDTO, error)
}

type GetCommentsExecutor interface {
	Execute(ctx context.Context, query GetCommentsQuery) ([]*dto.CommentDTO, error)
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context) (*concern.Statistics, error)
}
