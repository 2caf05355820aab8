package repository

import (
	"fmt"

	"gorm.io/gorm"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/persistence/mappers"
	"linkdeck/internal/infrastructure/persistence/models"
	"linkdeck/internal/shared/errors"
)

// InstagramAccountRepository implements the social.InstagramAccountRepository
// interface using GORM with Model/Mapper separation.
type InstagramAccountRepository struct {
	db     *gorm.DB
	mapper mappers.InstagramAccountMapper
}

// NewInstagramAccountRepository creates a new InstagramAccountRepository.
func NewInstagramAccountRepository(db *gorm.DB) social.InstagramAccountRepository {
	return &InstagramAccountRepository{
		db:     db,
		mapper: mappers.NewInstagramAccountMapper(),
	}
}

func (r *InstagramAccountRepository) Create(account *social.InstagramAccount) error {
	model := r.mapper.ToModel(account)
	if err := r.db.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("instagram account already linked")
		}
		return fmt.Errorf("failed to create instagram account: %w", err)
	}
	// Sync auto-generated ID back to the domain entity
	account.ID = model.ID
	return nil
}

func (r *InstagramAccountRepository) GetByBusinessAccountID(userID uint, businessAccountID string) (*social.InstagramAccount, error) {
	var model models.InstagramAccountModel
	err := r.db.Where("user_id = ? AND instagram_business_account_id = ?", userID, businessAccountID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("instagram account not found")
		}
		return nil, fmt.Errorf("failed to get instagram account: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *InstagramAccountRepository) ListByUserID(userID uint) ([]*social.InstagramAccount, error) {
	var accountModels []*models.InstagramAccountModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list instagram accounts by user ID: %w", err)
	}
	return r.mapper.ToDomainList(accountModels), nil
}

func (r *InstagramAccountRepository) DeleteByBusinessAccountID(userID uint, businessAccountID string) (int64, error) {
	result := r.db.Where("user_id = ? AND instagram_business_account_id = ?", userID, businessAccountID).
		Delete(&models.InstagramAccountModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete instagram account: %w", result.Error)
	}
	return result.RowsAffected, nil
}
