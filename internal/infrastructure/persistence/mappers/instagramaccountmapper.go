package mappers

import (
	"gorm.io/datatypes"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/persistence/models"
	"linkdeck/internal/shared/mapper"
)

// InstagramAccountMapper handles the conversion between domain entities and persistence models.
type InstagramAccountMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *social.InstagramAccount) *models.InstagramAccountModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.InstagramAccountModel) *social.InstagramAccount

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.InstagramAccountModel) []*social.InstagramAccount
}

// InstagramAccountMapperImpl is the concrete implementation of InstagramAccountMapper.
type InstagramAccountMapperImpl struct{}

// NewInstagramAccountMapper creates a new InstagramAccountMapper.
func NewInstagramAccountMapper() InstagramAccountMapper {
	return &InstagramAccountMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *InstagramAccountMapperImpl) ToModel(entity *social.InstagramAccount) *models.InstagramAccountModel {
	if entity == nil {
		return nil
	}
	return &models.InstagramAccountModel{
		ID:                         entity.ID,
		UserID:                     entity.UserID,
		AccountName:                entity.AccountName,
		FacebookPageID:             entity.FacebookPageID,
		InstagramBusinessAccountID: entity.InstagramBusinessAccountID,
		AccessToken:                entity.AccessToken,
		ProfilePicturePath:         entity.ProfilePicturePath,
		RawAccountInfo:             datatypes.JSON(entity.RawAccountInfo),
		CreatedAt:                  entity.CreatedAt,
		UpdatedAt:                  entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *InstagramAccountMapperImpl) ToDomain(model *models.InstagramAccountModel) *social.InstagramAccount {
	if model == nil {
		return nil
	}
	return &social.InstagramAccount{
		ID:                         model.ID,
		UserID:                     model.UserID,
		AccountName:                model.AccountName,
		FacebookPageID:             model.FacebookPageID,
		InstagramBusinessAccountID: model.InstagramBusinessAccountID,
		AccessToken:                model.AccessToken,
		ProfilePicturePath:         model.ProfilePicturePath,
		RawAccountInfo:             []byte(model.RawAccountInfo),
		CreatedAt:                  model.CreatedAt,
		UpdatedAt:                  model.UpdatedAt,
	}
}

// ToDomainList converts multiple persistence models to domain entities.
func (m *InstagramAccountMapperImpl) ToDomainList(items []*models.InstagramAccountModel) []*social.InstagramAccount {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
