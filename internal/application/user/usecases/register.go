package usecases

import (
	"context"
	"time"

	"grievance/internal/application/user/dto"
	"grievance/internal/domain/user"
	vo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/shared/errors"
	"grievance/internal/shared/logger"
)

type RegisterCommand struct {
	SRCode    string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Program   string
	YearLevel int
}

// AuthResult is returned by every use case that ends with a signed-in user.
type AuthResult struct {
	User                 *dto.UserDTO
	AccessToken          string
	ExpiresIn            int64
	RequiresVerification bool
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokenService   TokenService
	codeGenerator  CodeGenerator
	emailService   AuthEmailService
	codeTTL        time.Duration
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	tokenService TokenService,
	codeGenerator CodeGenerator,
	emailService AuthEmailService,
	codeTTL time.Duration,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		codeGenerator:  codeGenerator,
		emailService:   emailService,
		codeTTL:        codeTTL,
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	uc.logger.Infow("executing register use case", "sr_code", cmd.SRCode)

	srCode, err := vo.NewSRCode(cmd.SRCode)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	if exists, err := uc.userRepo.ExistsByEmail(ctx, email.String()); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}
	if exists, err := uc.userRepo.ExistsBySRCode(ctx, srCode.String()); err != nil {
		return nil, err
	} else if exists {
		return nil, errors.NewConflictError("an account with this SR code already exists")
	}

	newUser, err := user.NewUser(srCode, email, cmd.FirstName, cmd.LastName, cmd.Program, cmd.YearLevel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process registration")
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	code, err := uc.codeGenerator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate verification code", "error", err)
		return nil, errors.NewInternalError("failed to process registration")
	}
	if err := newUser.IssueVerificationCode(code, time.Now().Add(uc.codeTTL)); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	// Verification email is best effort; the code can be resent.
	go func() {
		if err := uc.emailService.SendVerificationEmail(email.String(), newUser.FullName(), code); err != nil {
			uc.logger.Errorw("failed to send verification email", "email", email.String(), "error", err)
		}
	}()

	token, expiresIn, err := uc.tokenService.GenerateAccessToken(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "sr_code", srCode.String())

	return &AuthResult{
		User:                 dto.NewUserDTO(newUser),
		AccessToken:          token,
		ExpiresIn:            expiresIn,
		RequiresVerification: true,
	}, nil
}
