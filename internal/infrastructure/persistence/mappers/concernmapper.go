package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"grievance/internal/domain/concern"
	vo "grievance/internal/domain/concern/valueobjects"
	"grievance/internal/infrastructure/persistence/models"
)

// ConcernMapper handles the conversion between domain entities and persistence models
type ConcernMapper interface {
	ToEntity(model *models.ConcernModel) (*concern.Concern, error)
	ToModel(entity *concern.Concern) (*models.ConcernModel, error)
	ToEntities(models []*models.ConcernModel) ([]*concern.Concern, error)
}

type concernMapper struct{}

// NewConcernMapper creates a new concern mapper
func NewConcernMapper() ConcernMapper {
	return &concernMapper{}
}

func (m *concernMapper) ToEntity(model *models.ConcernModel) (*concern.Concern, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewConcernStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create priority value object: %w", err)
	}

	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to decode attachments: %w", err)
		}
	}

	entity, err := concern.ReconstructConcern(
		model.ID,
		model.TicketNumber,
		model.StudentID,
		model.CategoryID,
		model.OtherCategory,
		model.Title,
		model.Description,
		model.AssignedOfficeID,
		model.AssignedAdminID,
		status,
		priority,
		model.IsAnonymous,
		model.Location,
		model.IncidentDate,
		attachments,
		model.ResolutionNotes,
		model.ResolvedByID,
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct concern entity: %w", err)
	}

	return entity, nil
}

func (m *concernMapper) ToModel(entity *concern.Concern) (*models.ConcernModel, error) {
	if entity == nil {
		return nil, nil
	}

	var attachments datatypes.JSON
	if list := entity.Attachments(); len(list) > 0 {
		raw, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("failed to encode attachments: %w", err)
		}
		attachments = raw
	}

	return &models.ConcernModel{
		ID:               entity.ID(),
		TicketNumber:     entity.TicketNumber(),
		StudentID:        entity.StudentID(),
		CategoryID:       entity.CategoryID(),
		OtherCategory:    entity.OtherCategory(),
		Title:            entity.Title(),
		Description:      entity.Description(),
		AssignedOfficeID: entity.AssignedOfficeID(),
		AssignedAdminID:  entity.AssignedAdminID(),
		Status:           entity.Status().String(),
		Priority:         entity.Priority().String(),
		IsAnonymous:      entity.IsAnonymous(),
		Location:         entity.Location(),
		IncidentDate:     entity.IncidentDate(),
		Attachments:      attachments,
		ResolutionNotes:  entity.ResolutionNotes(),
		ResolvedByID:     entity.ResolvedByID(),
		ResolvedAt:       entity.ResolvedAt(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *concernMapper) ToEntities(modelList []*models.ConcernModel) ([]*concern.Concern, error) {
	entities := make([]*concern.Concern, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map concern %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// StatusHistoryMapper converts audit trail rows.
type StatusHistoryMapper interface {
	ToEntity(model *models.StatusHistoryModel) (*concern.StatusHistoryEntry, error)
	ToModel(entity *concern.StatusHistoryEntry) (*models.StatusHistoryModel, error)
	ToEntities(models []*models.StatusHistoryModel) ([]*concern.StatusHistoryEntry, error)
}

type statusHistoryMapper struct{}

func NewStatusHistoryMapper() StatusHistoryMapper {
	return &statusHistoryMapper{}
}

func (m *statusHistoryMapper) ToEntity(model *models.StatusHistoryModel) (*concern.StatusHistoryEntry, error) {
	if model == nil {
		return nil, nil
	}

	newStatus, err := vo.NewConcernStatus(model.NewStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to create status value object: %w", err)
	}

	var oldStatus *vo.ConcernStatus
	if model.OldStatus != nil {
		s, err := vo.NewConcernStatus(*model.OldStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to create status value object: %w", err)
		}
		oldStatus = &s
	}

	return concern.ReconstructStatusHistoryEntry(
		model.ID,
		model.ConcernID,
		oldStatus,
		newStatus,
		model.ChangedByID,
		model.Remarks,
		model.CreatedAt,
	)
}

func (m *statusHistoryMapper) ToModel(entity *concern.StatusHistoryEntry) (*models.StatusHistoryModel, error) {
	if entity == nil {
		return nil, nil
	}

	var oldStatus *string
	if entity.OldStatus() != nil {
		s := entity.OldStatus().String()
		oldStatus = &s
	}

	return &models.StatusHistoryModel{
		ID:          entity.ID(),
		ConcernID:   entity.ConcernID(),
		OldStatus:   oldStatus,
		NewStatus:   entity.NewStatus().String(),
		ChangedByID: entity.ChangedByID(),
		Remarks:     entity.Remarks(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *statusHistoryMapper) ToEntities(modelList []*models.StatusHistoryModel) ([]*concern.StatusHistoryEntry, error) {
	entities := make([]*concern.StatusHistoryEntry, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map history entry %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// CommentMapper converts concern comment rows.
type CommentMapper interface {
	ToEntity(model *models.CommentModel) (*concern.Comment, error)
	ToModel(entity *concern.Comment) (*models.CommentModel, error)
	ToEntities(models []*models.CommentModel) ([]*concern.Comment, error)
}

type commentMapper struct{}

func NewCommentMapper() CommentMapper {
	return &commentMapper{}
}

func (m *commentMapper) ToEntity(model *models.CommentModel) (*concern.Comment, error) {
	if model == nil {
		return nil, nil
	}
	return concern.ReconstructComment(
		model.ID,
		model.ConcernID,
		model.UserID,
		model.Text,
		model.IsInternal,
		model.CreatedAt,
	)
}

func (m *commentMapper) ToModel(entity *concern.Comment) (*models.CommentModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.CommentModel{
		ID:         entity.ID(),
		ConcernID:  entity.ConcernID(),
		UserID:     entity.UserID(),
		Text:       entity.Text(),
		IsInternal: entity.IsInternal(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *commentMapper) ToEntities(modelList []*models.CommentModel) ([]*concern.Comment, error) {
	entities := make([]*concern.Comment, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map comment %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
