package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"grievance/internal/domain/user"
	"grievance/internal/infrastructure/persistence/mappers"
	"grievance/internal/infrastructure/persistence/models"
	"grievance/internal/shared/constants"
	"grievance/internal/shared/db"
	"grievance/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetBySRCode(ctx context.Context, srCode string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sr_code = ?", srCode).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("google_id = ?", googleID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

// Delete removes the user and everything they own in one transaction:
// concerns authored by them plus the comments, notifications and history
// rows hanging off those concerns, then their own comments and
// notifications on other concerns.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var concernIDs []uint
		if err := tx.Model(&models.ConcernModel{}).
			Where("student_id = ?", id).
			Pluck("id", &concernIDs).Error; err != nil {
			return fmt.Errorf("failed to collect user concerns: %w", err)
		}

		if len(concernIDs) > 0 {
			if err := tx.Where("concern_id IN ?", concernIDs).
				Delete(&models.CommentModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete concern comments: %w", err)
			}
			if err := tx.Where("concern_id IN ?", concernIDs).
				Delete(&models.StatusHistoryModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete concern history: %w", err)
			}
			if err := tx.Where("concern_id IN ?", concernIDs).
				Delete(&models.NotificationModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete concern notifications: %w", err)
			}
			if err := tx.Where("id IN ?", concernIDs).
				Delete(&models.ConcernModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete concerns: %w", err)
			}
		}

		if err := tx.Where("user_id = ?", id).
			Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user comments: %w", err)
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.NotificationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete user notifications: %w", err)
		}

		result := tx.Delete(&models.UserModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("user not found")
		}

		return nil
	})
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.UserModel{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Program != "" {
		query = query.Where("program = ?", filter.Program)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR sr_code LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	var modelList []*models.UserModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) ExistsBySRCode(ctx context.Context, srCode string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).
		Where("sr_code = ?", srCode).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check SR code: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	var modelList []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role = ? AND is_active = ?", "admin", true).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
