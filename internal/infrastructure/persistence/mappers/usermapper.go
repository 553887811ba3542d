package mappers

import (
	"fmt"

	"grievance/internal/domain/user"
	vo "grievance/internal/domain/user/valueobjects"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	srCode, err := vo.NewSRCode(model.SRCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create SR code value object: %w", err)
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	entity, err := user.ReconstructUser(
		model.ID,
		srCode,
		email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		model.Program,
		model.YearLevel,
		role,
		model.GoogleID,
		model.EmailVerified,
		model.VerificationCode,
		model.VerificationExpiresAt,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:                    entity.ID(),
		SRCode:                entity.SRCode().String(),
		Email:                 entity.Email().String(),
		PasswordHash:          entity.PasswordHash(),
		FirstName:             entity.FirstName(),
		LastName:              entity.LastName(),
		Program:               entity.Program(),
		YearLevel:             entity.YearLevel(),
		Role:                  entity.Role().String(),
		GoogleID:              entity.GoogleID(),
		EmailVerified:         entity.IsEmailVerified(),
		VerificationCode:      entity.VerificationCode(),
		VerificationExpiresAt: entity.VerificationExpiresAt(),
		IsActive:              entity.IsActive(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}, nil
}

func (m *userMapper) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
