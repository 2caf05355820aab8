package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
	"linkdeck/internal/shared/logger"
)

type ConnectYoutubeChannelCommand struct {
	UserID            uint
	ChannelID         string
	ChannelCustomURL  string
	ProfilePictureURL string
}

type ConnectYoutubeChannelResult struct {
	ChannelID string
}

// ConnectYoutubeChannelUseCase links a YouTube channel: re-host the profile
// picture, then insert the row.
type ConnectYoutubeChannelUseCase struct {
	channelRepo social.YoutubeChannelRepository
	mediaStore  MediaStore
	viewCache   ViewCache
	logger      logger.Interface
}

func NewConnectYoutubeChannelUseCase(
	channelRepo social.YoutubeChannelRepository,
	mediaStore MediaStore,
	viewCache ViewCache,
	logger logger.Interface,
) *ConnectYoutubeChannelUseCase {
	return &ConnectYoutubeChannelUseCase{
		channelRepo: channelRepo,
		mediaStore:  mediaStore,
		viewCache:   viewCache,
		logger:      logger,
	}
}

func (uc *ConnectYoutubeChannelUseCase) Execute(ctx context.Context, cmd ConnectYoutubeChannelCommand) (*ConnectYoutubeChannelResult, error) {
	picturePath := ""
	if cmd.ProfilePictureURL != "" {
		var err error
		picturePath, err = uc.mediaStore.RehostProfilePicture(ctx, cmd.ProfilePictureURL,
			cmd.UserID, social.ProviderYoutube, cmd.ChannelID)
		if err != nil {
			return nil, uc.fail(cmd, "rehost_profile_picture", err)
		}
	}

	channel, err := social.NewYoutubeChannel(cmd.UserID, cmd.ChannelID, cmd.ChannelCustomURL, picturePath)
	if err != nil {
		return nil, uc.fail(cmd, "persist_channel", err)
	}

	if err := uc.channelRepo.Create(channel); err != nil {
		return nil, uc.fail(cmd, "persist_channel", err)
	}

	uc.viewCache.Invalidate(ctx, cmd.UserID)

	uc.logger.Infow("youtube channel connected",
		"user_id", cmd.UserID,
		"channel_id", cmd.ChannelID)

	return &ConnectYoutubeChannelResult{ChannelID: cmd.ChannelID}, nil
}

func (uc *ConnectYoutubeChannelUseCase) fail(cmd ConnectYoutubeChannelCommand, step string, err error) error {
	uc.logger.Errorw("failed to connect youtube channel",
		"user_id", cmd.UserID,
		"channel_id", cmd.ChannelID,
		"step", step,
		"error", err)
	return errors.NewInternalError(ErrMsgConnectFailed)
}
