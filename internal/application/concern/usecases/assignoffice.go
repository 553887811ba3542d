package usecases

import (
	"context"

	"grievance/internal/application/concern/dto"
	"grievance/internal/domain/category"
	"grievance/internal/domain/concern"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type AssignOfficeCommand struct {
	ConcernID uint
	OfficeID  uint
	AdminID   uint
}

// AssignOfficeUseCase routes a concern to an office. Assignment leaves the
// status untouched and writes no history row.
type AssignOfficeUseCase struct {
	concernRepo concern.ConcernRepository
	officeRepo  category.OfficeRepository
	notifier    LifecycleNotifier
	tx          Transactor
	logger      logger.Interface
}

func NewAssignOfficeUseCase(
	concernRepo concern.ConcernRepository,
	officeRepo category.OfficeRepository,
	notifier LifecycleNotifier,
	tx Transactor,
	logger logger.Interface,
) *AssignOfficeUseCase {
	return &AssignOfficeUseCase{
		concernRepo: concernRepo,
		officeRepo:  officeRepo,
		notifier:    notifier,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *AssignOfficeUseCase) Execute(ctx context.Context, cmd AssignOfficeCommand) (*dto.ConcernDTO, error) {
	uc.logger.Infow("executing assign office use case", "concern_id", cmd.ConcernID, "office_id", cmd.OfficeID)

	if cmd.ConcernID == 0 {
		return nil, errors.NewValidationError("concern ID is required")
	}
	if cmd.OfficeID == 0 {
		return nil, errors.NewValidationError("office ID is required")
	}
	if cmd.AdminID == 0 {
		return nil, errors.NewValidationError("admin ID is required")
	}

	office, err := uc.officeRepo.GetByID(ctx, cmd.OfficeID)
	if err != nil {
		return nil, err
	}
	if !office.IsActive() {
		return nil, errors.NewValidationError("office is inactive")
	}

	c, err := uc.concernRepo.GetByID(ctx, cmd.ConcernID)
	if err != nil {
		return nil, err
	}

	if err := c.AssignTo(cmd.OfficeID, cmd.AdminID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.concernRepo.Update(txCtx, c); err != nil {
			return err
		}
		return uc.notifier.RecordAssigned(txCtx, c, office.Name())
	})
	if err != nil {
		uc.logger.Errorw("failed to assign concern", "concern_id", cmd.ConcernID, "error", err)
		return nil, err
	}

	uc.notifier.EmailAssigned(c, office.Name())

	uc.logger.Infow("concern assigned", "concern_id", c.ID(), "office", office.Name(), "admin_id", cmd.AdminID)

	return dto.NewConcernDTO(c), nil
}
