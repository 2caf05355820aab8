package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain/social"
	sharedErrors "linkdeck/internal/shared/errors"
)

func TestConnectYoutubeChannel_Success(t *testing.T) {
	var created *social.YoutubeChannel
	channelRepo := &mockYoutubeChannelRepo{
		CreateFunc: func(channel *social.YoutubeChannel) error {
			created = channel
			return nil
		},
	}
	mediaStore := &mockMediaStore{
		RehostProfilePictureFunc: func(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error) {
			assert.Equal(t, social.ProviderYoutube, provider)
			assert.Equal(t, "UC0001", accountID)
			return "42/youtubeChannel/UC0001/profile_picture.jpeg", nil
		},
	}
	viewCache := &mockViewCache{}

	uc := NewConnectYoutubeChannelUseCase(channelRepo, mediaStore, viewCache, &mockLogger{})

	result, err := uc.Execute(context.Background(), ConnectYoutubeChannelCommand{
		UserID:            42,
		ChannelID:         "UC0001",
		ChannelCustomURL:  "@mychannel",
		ProfilePictureURL: "https://yt3.ggpht.com/pic.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, "UC0001", result.ChannelID)
	require.NotNil(t, created)
	assert.Equal(t, uint(42), created.UserID)
	assert.Equal(t, "@mychannel", created.ChannelCustomURL)
	assert.Equal(t, "42/youtubeChannel/UC0001/profile_picture.jpeg", created.ProfilePicturePath)
	assert.Equal(t, []uint{42}, viewCache.invalidated)
}

func TestConnectYoutubeChannel_EmptyPictureURLSkipsRehost(t *testing.T) {
	rehosted := false
	channelRepo := &mockYoutubeChannelRepo{}
	mediaStore := &mockMediaStore{
		RehostProfilePictureFunc: func(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error) {
			rehosted = true
			return "", nil
		},
	}

	uc := NewConnectYoutubeChannelUseCase(channelRepo, mediaStore, &mockViewCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ConnectYoutubeChannelCommand{
		UserID:    42,
		ChannelID: "UC0001",
	})

	require.NoError(t, err)
	assert.False(t, rehosted)
}

func TestConnectYoutubeChannel_RehostFailureReturnsGenericError(t *testing.T) {
	inserted := false
	channelRepo := &mockYoutubeChannelRepo{
		CreateFunc: func(channel *social.YoutubeChannel) error {
			inserted = true
			return nil
		},
	}
	mediaStore := &mockMediaStore{
		RehostProfilePictureFunc: func(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error) {
			return "", errors.New("bucket unreachable")
		},
	}

	uc := NewConnectYoutubeChannelUseCase(channelRepo, mediaStore, &mockViewCache{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ConnectYoutubeChannelCommand{
		UserID:            42,
		ChannelID:         "UC0001",
		ProfilePictureURL: "https://yt3.ggpht.com/pic.jpg",
	})

	require.Error(t, err)
	var appErr *sharedErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrMsgConnectFailed, appErr.Message)
	assert.NotContains(t, appErr.Message, "bucket unreachable")
	assert.False(t, inserted)
}

func TestConnectYoutubeChannel_InsertFailureReturnsGenericError(t *testing.T) {
	channelRepo := &mockYoutubeChannelRepo{
		CreateFunc: func(channel *social.YoutubeChannel) error {
			return sharedErrors.NewConflictError("youtube channel already linked")
		},
	}
	viewCache := &mockViewCache{}

	uc := NewConnectYoutubeChannelUseCase(channelRepo, &mockMediaStore{}, viewCache, &mockLogger{})

	_, err := uc.Execute(context.Background(), ConnectYoutubeChannelCommand{
		UserID:    42,
		ChannelID: "UC0001",
	})

	require.Error(t, err)
	var appErr *sharedErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrMsgConnectFailed, appErr.Message)
	assert.Empty(t, viewCache.invalidated)
}
