package social

import (
	"fmt"
	"time"

	"linkdeck/internal/shared/biztime"
)

// YoutubeChannel is a linked YouTube channel.
type YoutubeChannel struct {
	ID                 uint
	UserID             uint
	ChannelID          string
	ChannelCustomURL   string
	ProfilePicturePath string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewYoutubeChannel(userID uint, channelID, channelCustomURL, profilePicturePath string) (*YoutubeChannel, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	now := biztime.NowUTC()
	return &YoutubeChannel{
		UserID:             userID,
		ChannelID:          channelID,
		ChannelCustomURL:   channelCustomURL,
		ProfilePicturePath: profilePicturePath,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

type YoutubeChannelRepository interface {
	Create(channel *YoutubeChannel) error
	GetByChannelID(userID uint, channelID string) (*YoutubeChannel, error)
	ListByUserID(userID uint) ([]*YoutubeChannel, error)
	DeleteByChannelID(userID uint, channelID string) (int64, error)
}
