package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
)

func TestDisconnectAccountUseCase_InstagramSuccess(t *testing.T) {
	repo := &mockInstagramAccountRepo{
		DeleteByBusinessAccountIDFunc: func(userID uint, id string) (int64, error) {
			assert.Equal(t, uint(42), userID)
			assert.Equal(t, "17841400000000001", id)
			return 1, nil
		},
	}
	var deletedPrefix string
	mediaStore := &mockMediaStore{
		DeleteAccountMediaFunc: func(ctx context.Context, userID uint, provider social.Provider, accountID string) error {
			deletedPrefix = fmt.Sprintf("%d/%s/%s", userID, provider, accountID)
			return nil
		},
	}
	cache := &mockViewCache{}

	uc := NewDisconnectAccountUseCase(repo, &mockYoutubeChannelRepo{}, mediaStore, cache, &mockLogger{})

	target, err := social.InstagramTarget("17841400000000001")
	require.NoError(t, err)
	require.NoError(t, uc.Execute(context.Background(), 42, target))

	assert.Equal(t, "42/instagram/17841400000000001", deletedPrefix)
	assert.Equal(t, []uint{42}, cache.invalidated)
}

func TestDisconnectAccountUseCase_AbsentRowIsSuccess(t *testing.T) {
	repo := &mockInstagramAccountRepo{
		DeleteByBusinessAccountIDFunc: func(userID uint, id string) (int64, error) {
			return 0, nil
		},
	}
	mediaCalled := false
	mediaStore := &mockMediaStore{
		DeleteAccountMediaFunc: func(ctx context.Context, userID uint, provider social.Provider, accountID string) error {
			mediaCalled = true
			return nil
		},
	}

	uc := NewDisconnectAccountUseCase(repo, &mockYoutubeChannelRepo{}, mediaStore, &mockViewCache{}, &mockLogger{})

	target, err := social.InstagramTarget("17841499999999999")
	require.NoError(t, err)
	require.NoError(t, uc.Execute(context.Background(), 42, target))
	assert.False(t, mediaCalled, "no media cleanup for absent rows")
}

func TestDisconnectAccountUseCase_RowDeleteFailureIsGeneric(t *testing.T) {
	repo := &mockInstagramAccountRepo{
		DeleteByBusinessAccountIDFunc: func(userID uint, id string) (int64, error) {
			return 0, fmt.Errorf("db gone")
		},
	}

	uc := NewDisconnectAccountUseCase(repo, &mockYoutubeChannelRepo{}, &mockMediaStore{}, &mockViewCache{}, &mockLogger{})

	target, err := social.InstagramTarget("17841400000000001")
	require.NoError(t, err)
	err = uc.Execute(context.Background(), 42, target)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrMsgDisconnectFailed, appErr.Message)
	assert.NotContains(t, appErr.Message, "db gone")
}

func TestDisconnectAccountUseCase_MediaFailureLeavesOrphan(t *testing.T) {
	repo := &mockInstagramAccountRepo{
		DeleteByBusinessAccountIDFunc: func(userID uint, id string) (int64, error) {
			return 1, nil
		},
	}
	mediaStore := &mockMediaStore{
		DeleteAccountMediaFunc: func(ctx context.Context, userID uint, provider social.Provider, accountID string) error {
			return fmt.Errorf("bucket unreachable")
		},
	}
	cache := &mockViewCache{}

	uc := NewDisconnectAccountUseCase(repo, &mockYoutubeChannelRepo{}, mediaStore, cache, &mockLogger{})

	target, err := social.InstagramTarget("17841400000000001")
	require.NoError(t, err)
	// Row deletion already happened; media failure is logged, not surfaced.
	require.NoError(t, uc.Execute(context.Background(), 42, target))
	assert.Equal(t, []uint{42}, cache.invalidated)
}

func TestDisconnectAccountUseCase_Youtube(t *testing.T) {
	channelRepo := &mockYoutubeChannelRepo{
		DeleteByChannelIDFunc: func(userID uint, channelID string) (int64, error) {
			assert.Equal(t, "UC0001", channelID)
			return 1, nil
		},
	}
	var provider social.Provider
	mediaStore := &mockMediaStore{
		DeleteAccountMediaFunc: func(ctx context.Context, userID uint, p social.Provider, accountID string) error {
			provider = p
			return nil
		},
	}

	uc := NewDisconnectAccountUseCase(&mockInstagramAccountRepo{}, channelRepo, mediaStore, &mockViewCache{}, &mockLogger{})

	target, err := social.YoutubeTarget("UC0001")
	require.NoError(t, err)
	require.NoError(t, uc.Execute(context.Background(), 7, target))
	assert.Equal(t, social.ProviderYoutube, provider)
}

func TestDisconnectAccountUseCase_ZeroTarget(t *testing.T) {
	uc := NewDisconnectAccountUseCase(&mockInstagramAccountRepo{}, &mockYoutubeChannelRepo{}, &mockMediaStore{}, &mockViewCache{}, &mockLogger{})

	err := uc.Execute(context.Background(), 42, social.DeletionTarget{})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
