package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
)

func createTestYoutubeChannel(t *testing.T, userID uint, channelID string) *social.YoutubeChannel {
	channel, err := social.NewYoutubeChannel(userID, channelID, "@creator", "")
	require.NoError(t, err)
	return channel
}

func TestYoutubeChannelRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewYoutubeChannelRepository(db)

	t.Run("create new channel successfully", func(t *testing.T) {
		channel := createTestYoutubeChannel(t, 1, "UC0001")
		err := repo.Create(channel)
		assert.NoError(t, err)
		assert.NotZero(t, channel.ID)
	})

	t.Run("duplicate channel for same user returns conflict", func(t *testing.T) {
		require.NoError(t, repo.Create(createTestYoutubeChannel(t, 2, "UC0002")))

		err := repo.Create(createTestYoutubeChannel(t, 2, "UC0002"))
		require.Error(t, err)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	})
}

func TestYoutubeChannelRepository_GetByChannelID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewYoutubeChannelRepository(db)

	channel := createTestYoutubeChannel(t, 10, "UC0010")
	channel.ProfilePicturePath = "10/youtubeChannel/UC0010/profile_picture.png"
	require.NoError(t, repo.Create(channel))

	found, err := repo.GetByChannelID(10, "UC0010")
	require.NoError(t, err)
	assert.Equal(t, channel.ID, found.ID)
	assert.Equal(t, "@creator", found.ChannelCustomURL)
	assert.Equal(t, channel.ProfilePicturePath, found.ProfilePicturePath)

	_, err = repo.GetByChannelID(10, "UC9999")
	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestYoutubeChannelRepository_DeleteByChannelID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewYoutubeChannelRepository(db)

	require.NoError(t, repo.Create(createTestYoutubeChannel(t, 20, "UC0020")))

	rows, err := repo.DeleteByChannelID(20, "UC0020")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.DeleteByChannelID(20, "UC0020")
	require.NoError(t, err)
	assert.Zero(t, rows)

	channels, err := repo.ListByUserID(20)
	require.NoError(t, err)
	assert.Empty(t, channels)
}
