package repository

import (
	"fmt"

	"gorm.io/gorm"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/persistence/mappers"
	"linkdeck/internal/infrastructure/persistence/models"
	"linkdeck/internal/shared/errors"
)

// YoutubeChannelRepository implements the social.YoutubeChannelRepository
// interface using GORM with Model/Mapper separation.
type YoutubeChannelRepository struct {
	db     *gorm.DB
	mapper mappers.YoutubeChannelMapper
}

// NewYoutubeChannelRepository creates a new YoutubeChannelRepository.
func NewYoutubeChannelRepository(db *gorm.DB) social.YoutubeChannelRepository {
	return &YoutubeChannelRepository{
		db:     db,
		mapper: mappers.NewYoutubeChannelMapper(),
	}
}

func (r *YoutubeChannelRepository) Create(channel *social.YoutubeChannel) error {
	model := r.mapper.ToModel(channel)
	if err := r.db.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("youtube channel already linked")
		}
		return fmt.Errorf("failed to create youtube channel: %w", err)
	}
	// Sync auto-generated ID back to the domain entity
	channel.ID = model.ID
	return nil
}

func (r *YoutubeChannelRepository) GetByChannelID(userID uint, channelID string) (*social.YoutubeChannel, error) {
	var model models.YoutubeChannelModel
	err := r.db.Where("user_id = ? AND channel_id = ?", userID, channelID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("youtube channel not found")
		}
		return nil, fmt.Errorf("failed to get youtube channel: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *YoutubeChannelRepository) ListByUserID(userID uint) ([]*social.YoutubeChannel, error) {
	var channelModels []*models.YoutubeChannelModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&channelModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list youtube channels by user ID: %w", err)
	}
	return r.mapper.ToDomainList(channelModels), nil
}

func (r *YoutubeChannelRepository) DeleteByChannelID(userID uint, channelID string) (int64, error) {
	result := r.db.Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&models.YoutubeChannelModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete youtube channel: %w", result.Error)
	}
	return result.RowsAffected, nil
}
