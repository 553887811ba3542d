package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"grievance/internal/domain/concern"
	"grievance/internal/infrastructure/persistence/mappers"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/constants"
	"grievance/internal/shared/db"
	"grievance/internal/shared/errors"
)

type ConcernRepository struct {
	db     *gorm.DB
	mapper mappers.ConcernMapper
}

func NewConcernRepository(database *gorm.DB) *ConcernRepository {
	return &ConcernRepository{
		db:     database,
		mapper: mappers.NewConcernMapper(),
	}
}

// Save inserts the concern and assigns its ticket number in the same
// transaction. The sequence is derived from the highest existing number for
// the current year; callers must run Save inside a transaction so two
// concurrent creates cannot read the same sequence.
func (r *ConcernRepository) Save(ctx context.Context, c *concern.Concern) error {
	tx := db.GetTxFromContext(ctx, r.db)

	year := time.Now().Year()
	number, err := r.nextTicketNumber(tx, year)
	if err != nil {
		return err
	}
	if err := c.SetTicketNumber(number); err != nil {
		return err
	}

	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save concern: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ConcernRepository) nextTicketNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("GRV-%04d-", year)

	var last string
	err := tx.Model(&models.ConcernModel{}).
		Select("ticket_number").
		Where("ticket_number LIKE ?", prefix+"%").
		Order("ticket_number DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", fmt.Errorf("failed to read last ticket number: %w", err)
	}

	sequence := 1
	if last != "" {
		var lastYear, lastSeq int
		if _, err := fmt.Sscanf(last, "GRV-%04d-%05d", &lastYear, &lastSeq); err != nil {
			return "", fmt.Errorf("malformed ticket number %q: %w", last, err)
		}
		sequence = lastSeq + 1
	}

	return concern.FormatTicketNumber(year, sequence), nil
}

func (r *ConcernRepository) Update(ctx context.Context, c *concern.Concern) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ConcernModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "ticket_number", "student_id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update concern: %w", result.Error)
	}

	return nil
}

func (r *ConcernRepository) GetByID(ctx context.Context, id uint) (*concern.Concern, error) {
	var model models.ConcernModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("concern not found")
		}
		return nil, fmt.Errorf("failed to find concern: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ConcernRepository) GetByTicketNumber(ctx context.Context, number string) (*concern.Concern, error) {
	var model models.ConcernModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("concern not found")
		}
		return nil, fmt.Errorf("failed to find concern: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ConcernRepository) GetByStudent(ctx context.Context, studentID uint) ([]*concern.Concern, error) {
	var modelList []*models.ConcernModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list concerns: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *ConcernRepository) List(ctx context.Context, filter concern.ConcernFilter) ([]*concern.Concern, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ConcernModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count concerns: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.ConcernModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list concerns: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *ConcernRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ConcernModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count concerns: %w", err)
	}

	return count, nil
}

func (r *ConcernRepository) GetStatistics(ctx context.Context) (*concern.Statistics, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	type row struct {
		Status string
		Count  int64
	}

	var byStatus []row
	if err := tx.Model(&models.ConcernModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate concern statuses: %w", err)
	}

	stats := &concern.Statistics{}
	for _, r := range byStatus {
		stats.Total += r.Count
		switch r.Status {
		case "pending":
			stats.Pending = r.Count
		case "in-review":
			stats.InReview = r.Count
		case "in-progress":
			stats.InProgress = r.Count
		case "resolved":
			stats.Resolved = r.Count
		case "closed":
			stats.Closed = r.Count
		case "rejected":
			stats.Rejected = r.Count
		}
	}

	if err := tx.Model(&models.ConcernModel{}).
		Where("priority = ?", "urgent").
		Count(&stats.Urgent).Error; err != nil {
		return nil, fmt.Errorf("failed to count urgent concerns: %w", err)
	}
	if err := tx.Model(&models.ConcernModel{}).
		Where("priority = ?", "high").
		Count(&stats.High).Error; err != nil {
		return nil, fmt.Errorf("failed to count high priority concerns: %w", err)
	}

	return stats, nil
}
