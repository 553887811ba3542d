package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type UpdatePriorityCommand struct {
	ConcernID uint
	Priority  string
}

// UpdatePriorityUseCase changes a concern's priority in place. Priority
// changes are not audited and produce no notification.
type UpdatePriorityUseCase struct {
	concernRepo concern.ConcernRepository
	logger      logger.Interface
}

func NewUpdatePriorityUseCase(concernRepo concern.ConcernRepository, logger logger.Interface) *UpdatePriorityUseCase {
	return &UpdatePriorityUseCase{concernRepo: concernRepo, logger: logger}
}

func (uc *UpdatePriorityUseCase) Execute(ctx context.Context, cmd UpdatePriorityCommand) (*dto.ConcernDTO, error) {
	uc.logger.Infow("executing update priority use case", "concern_id", cmd.ConcernID, "priority", cmd.Priority)

	if cmd.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}
	priority := vo.Priority(cmd.Priority)
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority: " + cmd.Priority)
	}

	c, err := uc.concernRepo.GetByID(ctx, cmd.ConcernID)
	if err != nil {
		return nil, err
	}

	if err := c.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.concernRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update concern priority", "concern_id", cmd.ConcernID, "error", err)
		return nil, err
	}

	return dto.NewConcernDTO(c), nil
}
