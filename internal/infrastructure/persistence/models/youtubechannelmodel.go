package models

import (
	"time"

	"linkdeck/internal/shared/constants"
)

// YoutubeChannelModel represents the database persistence model for linked
// YouTube channels.
type YoutubeChannelModel struct {
	ID                 uint   `gorm:"primarykey"`
	UserID             uint   `gorm:"not null;index:idx_yt_user_id;uniqueIndex:idx_yt_user_channel"`
	ChannelID          string `gorm:"not null;size:64;uniqueIndex:idx_yt_user_channel;column:channel_id"`
	ChannelCustomURL   string `gorm:"size:255;column:channel_custom_url"`
	ProfilePicturePath string `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (YoutubeChannelModel) TableName() string {
	return constants.TableYoutubeChannels
}
