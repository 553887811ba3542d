package usecases

import (
	"context"
	"time"

	"grievance/internal/domain/category"
	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type CreateConcernCommand struct {
	StudentID     uint
	CategoryID    uint
	OtherCategory string
	Title         string
	Description   string
	OfficeID      *uint
	Priority      string
	IsAnonymous   bool
	Location      string
	IncidentDate  *time.Time
	Attachments   []string
}

type CreateConcernResult struct {
	ConcernID    uint
	TicketNumber string
	Status       string
	CreatedAt    time.Time
}

type CreateConcernUseCase struct {
	concernRepo  concern.ConcernRepository
	historyRepo  concern.StatusHistoryRepository
	categoryRepo category.CategoryRepository
	notifier     LifecycleNotifier
	tx           Transactor
	logger       logger.Interface
}

func NewCreateConcernUseCase(
	concernRepo concern.ConcernRepository,
	historyRepo concern.StatusHistoryRepository,
	categoryRepo category.CategoryRepository,
	notifier LifecycleNotifier,
	tx Transactor,
	logger logger.Interface,
) *CreateConcernUseCase {
	return &CreateConcernUseCase{
		concernRepo:  concernRepo,
		historyRepo:  historyRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
		tx:           tx,
		logger:       logger,
	}
}

func (uc *CreateConcernUseCase) Execute(ctx context.Context, cmd CreateConcernCommand) (*CreateConcernResult, error) {
	uc.logger.Infow("executing create concern use case", "student_id", cmd.StudentID, "category_id", cmd.CategoryID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create concern command", "error", err)
		return nil, err
	}

	cat, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if !cat.IsActive() {
		return nil, errors.NewValidationError("category is no longer accepting concerns")
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityNormal
	}

	newConcern, err := concern.NewConcern(cmd.StudentID, cmd.CategoryID, cmd.Title, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newConcern.SetAnonymous(cmd.IsAnonymous)
	newConcern.SetLocation(cmd.Location)
	newConcern.SetOtherCategory(cmd.OtherCategory)
	newConcern.SetIncidentDate(cmd.IncidentDate)
	if cmd.OfficeID != nil {
		newConcern.SetInitialOffice(*cmd.OfficeID)
	}
	for _, attachment := range cmd.Attachments {
		if err := newConcern.AddAttachment(attachment); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Save assigns the ID and the per-year ticket number inside this
		// transaction, so concurrent creates cannot collide.
		if err := uc.concernRepo.Save(txCtx, newConcern); err != nil {
			return err
		}

		entry, err := concern.NewStatusHistoryEntry(newConcern.ID(), nil, vo.StatusPending, cmd.StudentID, "Concern created")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.RecordCreated(txCtx, newConcern)
	})
	if err != nil {
		uc.logger.Errorw("failed to save concern", "error", err)
		return nil, err
	}

	uc.notifier.EmailCreated(newConcern)

	uc.logger.Infow("concern created", "concern_id", newConcern.ID(), "ticket_number", newConcern.TicketNumber())

	return &CreateConcernResult{
		ConcernID:    newConcern.ID(),
		TicketNumber: newConcern.TicketNumber(),
		Status:       newConcern.Status().String(),
		CreatedAt:    newConcern.CreatedAt(),
	}, nil
}

func (uc *CreateConcernUseCase) validateCommand(cmd CreateConcernCommand) error {
	if cmd.StudentID == 0 {
		return errors.NewValidationError("student ID is required")
	}

	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}

	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
