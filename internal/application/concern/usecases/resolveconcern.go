package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type ResolveConcernCommand struct {
	ConcernID uint
	AdminID   uint
	Notes     string
}

type ResolveConcernUseCase struct {
	concernRepo concern.ConcernRepository
	historyRepo concern.StatusHistoryRepository
	notifier    LifecycleNotifier
	tx          Transactor
	logger      logger.Interface

	// recordActualPriorStatus controls what the history row reports as the
	// prior status. The legacy behavior (false) always records in-progress
	// regardless of where the concern actually was; deployments that want a
	// truthful trail set concern.record_actual_prior_status.
	recordActualPriorStatus bool
}

func NewResolveConcernUseCase(
	concernRepo concern.ConcernRepository,
	historyRepo concern.StatusHistoryRepository,
	notifier LifecycleNotifier,
	tx Transactor,
	logger logger.Interface,
	recordActualPriorStatus bool,
) *ResolveConcernUseCase {
	return &ResolveConcernUseCase{
		concernRepo:             concernRepo,
		historyRepo:             historyRepo,
		notifier:                notifier,
		tx:                      tx,
		logger:                  logger,
		recordActualPriorStatus: recordActualPriorStatus,
	}
}

func (uc *ResolveConcernUseCase) Execute(ctx context.Context, cmd ResolveConcernCommand) (*dto.ConcernDTO, error) {
	uc.logger.Infow("executing resolve concern use case", "concern_id", cmd.ConcernID, "admin_id", cmd.AdminID)

	if cmd.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}
	if cmd.AdminID == 0 {
		return nil, errors.NewValidationError("admin ID is required")
	}
	if len(cmd.Notes) == 0 {
		return nil, errors.NewValidationError("resolution notes are required")
	}

	c, err := uc.concernRepo.GetByID(ctx, cmd.ConcernID)
	if err != nil {
		return nil, err
	}

	priorStatus := c.Status()
	if err := c.Resolve(cmd.AdminID, cmd.Notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	recordedPrior := vo.StatusInProgress
	if uc.recordActualPriorStatus {
		recordedPrior = priorStatus
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.concernRepo.Update(txCtx, c); err != nil {
			return err
		}

		entry, err := concern.NewStatusHistoryEntry(c.ID(), &recordedPrior, vo.StatusResolved, cmd.AdminID, cmd.Notes)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.RecordResolved(txCtx, c)
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve concern", "concern_id", cmd.ConcernID, "error", err)
		return nil, err
	}

	uc.notifier.EmailResolved(c)

	uc.logger.Infow("concern resolved", "concern_id", c.ID(), "ticket_number", c.TicketNumber())

	return dto.NewConcernDTO(c), nil
}
