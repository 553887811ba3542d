package usecases

import (
	"context"
	"time"

	"grievance/internal/domain/user"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type ResendCodeCommand struct {
	UserID uint
}

type ResendCodeUseCase struct {
	userRepo      user.Repository
	codeGenerator CodeGenerator
	emailService  AuthEmailService
	codeTTL       time.Duration
	logger        logger.Interface
}

func NewResendCodeUseCase(
	userRepo user.Repository,
	codeGenerator CodeGenerator,
	emailService AuthEmailService,
	codeTTL time.Duration,
	logger logger.Interface,
) *ResendCodeUseCase {
	return &ResendCodeUseCase{
		userRepo:      userRepo,
		codeGenerator: codeGenerator,
		emailService:  emailService,
		codeTTL:       codeTTL,
		logger:        logger,
	}
}

func (uc *ResendCodeUseCase) Execute(ctx context.Context, cmd ResendCodeCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	if existing.IsEmailVerified() {
		return errors.NewConflictError("email is already verified")
	}

	code, err := uc.codeGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate verification code", "error", err)
		return errors.NewInternalError("failed to generate verification code")
	}
	if err := existing.IssueVerificationCode(code, time.Now().Add(uc.codeTTL)); err != nil {
		return errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist verification code", "user_id", cmd.UserID, "error", err)
		return err
	}

	go func() {
		if err := uc.emailService.SendVerificationEmail(existing.Email().String(), existing.FullName(), code); err != nil {
			uc.logger.Errorw("failed to send verification email", "user_id", cmd.UserID, "error", err)
		}
	}()

	return nil
}
