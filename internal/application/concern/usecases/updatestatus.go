package usecases

import (
	"context"
	"time"

	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type UpdateStatusCommand struct {
	ConcernID uint
	NewStatus string
	ActorID   uint
	Remarks   string
}

type UpdateStatusResult struct {
	ConcernID uint
	OldStatus string
	NewStatus string
	UpdatedAt time.Time
}

type UpdateStatusUseCase struct {
	concernRepo concern.ConcernRepository
	historyRepo concern.StatusHistoryRepository
	notifier    LifecycleNotifier
	tx          Transactor
	logger      logger.Interface
}

func NewUpdateStatusUseCase(
	concernRepo concern.ConcernRepository,
	historyRepo concern.StatusHistoryRepository,
	notifier LifecycleNotifier,
	tx Transactor,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		concernRepo: concernRepo,
		historyRepo: historyRepo,
		notifier:    notifier,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case", "concern_id", cmd.ConcernID, "new_status", cmd.NewStatus)

	if cmd.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}
	newStatus := vo.ConcernStatus(cmd.NewStatus)
	if !newStatus.IsValid() {
		return nil, errors.NewValidationError("invalid status: " + cmd.NewStatus)
	}

	c, err := uc.concernRepo.GetByID(ctx, cmd.ConcernID)
	if err != nil {
		return nil, err
	}

	oldStatus := c.Status()
	if err := c.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.concernRepo.Update(txCtx, c); err != nil {
			return err
		}

		old := oldStatus
		entry, err := concern.NewStatusHistoryEntry(c.ID(), &old, newStatus, cmd.ActorID, cmd.Remarks)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.RecordStatusChanged(txCtx, c, oldStatus, newStatus)
	})
	if err != nil {
		uc.logger.Errorw("failed to update concern status", "concern_id", cmd.ConcernID, "error", err)
		return nil, err
	}

	uc.notifier.EmailStatusChanged(c, oldStatus, newStatus, cmd.Remarks)

	uc.logger.Infow("concern status updated",
		"concern_id", c.ID(), "old_status", oldStatus.String(), "new_status", newStatus.String())

	return &UpdateStatusResult{
		ConcernID: c.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
		UpdatedAt: c.UpdatedAt(),
	}, nil
}
