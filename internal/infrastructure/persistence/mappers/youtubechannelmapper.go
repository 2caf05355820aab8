package mappers

import (
	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/persistence/models"
	"linkdeck/internal/shared/mapper"
)

// YoutubeChannelMapper handles the conversion between domain entities and persistence models.
type YoutubeChannelMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *social.YoutubeChannel) *models.YoutubeChannelModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.YoutubeChannelModel) *social.YoutubeChannel

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.YoutubeChannelModel) []*social.YoutubeChannel
}

// YoutubeChannelMapperImpl is the concrete implementation of YoutubeChannelMapper.
type YoutubeChannelMapperImpl struct{}

// NewYoutubeChannelMapper creates a new YoutubeChannelMapper.
func NewYoutubeChannelMapper() YoutubeChannelMapper {
	return &YoutubeChannelMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *YoutubeChannelMapperImpl) ToModel(entity *social.YoutubeChannel) *models.YoutubeChannelModel {
	if entity == nil {
		return nil
	}
	return &models.YoutubeChannelModel{
		ID:                 entity.ID,
		UserID:             entity.UserID,
		ChannelID:          entity.ChannelID,
		ChannelCustomURL:   entity.ChannelCustomURL,
		ProfilePicturePath: entity.ProfilePicturePath,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *YoutubeChannelMapperImpl) ToDomain(model *models.YoutubeChannelModel) *social.YoutubeChannel {
	if model == nil {
		return nil
	}
	return &social.YoutubeChannel{
		ID:                 model.ID,
		UserID:             model.UserID,
		ChannelID:          model.ChannelID,
		ChannelCustomURL:   model.ChannelCustomURL,
		ProfilePicturePath: model.ProfilePicturePath,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

// ToDomainList converts multiple persistence models to domain entities.
func (m *YoutubeChannelMapperImpl) ToDomainList(items []*models.YoutubeChannelModel) []*social.YoutubeChannel {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
