package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"

	// Database table names
	TableInstagramAccounts = "instagram_accounts"
	TableYoutubeChannels   = "youtube_channels"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
