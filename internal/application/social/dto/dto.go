package dto

import "time"

// ConnectInstagramAccountRequest carries the candidate the user picked plus
// the short-lived token from the picker flow.
type ConnectInstagramAccountRequest struct {
	AccountName                string `json:"account_name" validate:"max=255"`
	FacebookPageID             string `json:"facebook_page_id" binding:"required" validate:"required"`
	InstagramBusinessAccountID string `json:"instagram_business_account_id" binding:"required" validate:"required"`
	AccessToken                string `json:"access_token" binding:"required" validate:"required"`
	ProfilePictureURL          string `json:"profile_picture_url" validate:"omitempty,url"`
}

// ConnectInstagramAccountResponse echoes the linked account id so the UI can
// retract the pending candidate.
type ConnectInstagramAccountResponse struct {
	InstagramBusinessAccountID string `json:"instagram_business_account_id"`
}

// ConnectYoutubeChannelRequest links a YouTube channel to the dashboard.
type ConnectYoutubeChannelRequest struct {
	ChannelID         string `json:"channel_id" binding:"required" validate:"required"`
	ChannelCustomURL  string `json:"channel_custom_url" validate:"max=255"`
	ProfilePictureURL string `json:"profile_picture_url" validate:"omitempty,url"`
}

// ConnectYoutubeChannelResponse echoes the linked channel id.
type ConnectYoutubeChannelResponse struct {
	ChannelID string `json:"channel_id"`
}

// LinkedInstagramAccount is the dashboard view of a connected account.
type LinkedInstagramAccount struct {
	AccountName                string    `json:"account_name"`
	FacebookPageID             string    `json:"facebook_page_id"`
	InstagramBusinessAccountID string    `json:"instagram_business_account_id"`
	ProfilePicturePath         string    `json:"profile_picture_path"`
	ConnectedAt                time.Time `json:"connected_at"`
}

// LinkedYoutubeChannel is the dashboard view of a connected channel.
type LinkedYoutubeChannel struct {
	ChannelID          string    `json:"channel_id"`
	ChannelCustomURL   string    `json:"channel_custom_url"`
	ProfilePicturePath string    `json:"profile_picture_path"`
	ConnectedAt        time.Time `json:"connected_at"`
}

// LinkedAccountsResponse groups every linked account by provider.
type LinkedAccountsResponse struct {
	InstagramAccounts []LinkedInstagramAccount `json:"instagram_accounts"`
	YoutubeChannels   []LinkedYoutubeChannel   `json:"youtube_channels"`
}

// InstagramConnectURLResponse carries the picker authorization URL.
type InstagramConnectURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// CandidateResponse is an unlinked Instagram business account offered in the
// picker. The page token is short-lived and only valid for the connect call.
type CandidateResponse struct {
	InstagramBusinessAccountID string `json:"instagram_business_account_id"`
	Username                   string `json:"username"`
	AccountName                string `json:"account_name"`
	FacebookPageID             string `json:"facebook_page_id"`
	PageAccessToken            string `json:"page_access_token"`
	ProfilePictureURL          string `json:"profile_picture_url"`
}

// ListCandidatesResponse is the picker callback payload.
type ListCandidatesResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
}

// PublishingLimitResponse mirrors the Graph content publishing quota.
type PublishingLimitResponse struct {
	QuotaTotal    int `json:"quota_total"`
	QuotaDuration int `json:"quota_duration"`
	QuotaUsage    int `json:"quota_usage"`
}
