package constants

// OAuthErrorCode represents OAuth error codes seen during the account picker flow
type OAuthErrorCode string

const (
	// Provider errors (from the Facebook callback redirect)
	OAuthErrorAccessDenied       OAuthErrorCode = "access_denied"
	OAuthErrorInvalidRequest     OAuthErrorCode = "invalid_request"
	OAuthErrorUnauthorizedClient OAuthErrorCode = "unauthorized_client"
	OAuthErrorServerError        OAuthErrorCode = "server_error"

	// Internal errors
	OAuthErrorMissingCode  OAuthErrorCode = "missing_code"
	OAuthErrorMissingState OAuthErrorCode = "missing_state"
	OAuthErrorInvalidState OAuthErrorCode = "invalid_state"
)

// OAuthErrorMessages maps error codes to user-friendly messages
var OAuthErrorMessages = map[OAuthErrorCode]string{
	OAuthErrorAccessDenied:       "You denied the authorization request. Please try again if you wish to connect an account.",
	OAuthErrorInvalidRequest:     "Invalid OAuth request. Please contact support if this persists.",
	OAuthErrorUnauthorizedClient: "OAuth application is not authorized. Please contact support.",
	OAuthErrorServerError:        "The provider encountered an error. Please try again later.",

	OAuthErrorMissingCode:  "Authorization code is missing. Please restart the connect flow.",
	OAuthErrorMissingState: "Security validation failed. Please restart the connect flow.",
	OAuthErrorInvalidState: "Invalid or expired security token. Please restart the connect flow.",
}

// GetOAuthErrorMessage returns a user-friendly error message
func GetOAuthErrorMessage(code OAuthErrorCode) string {
	if msg, ok := OAuthErrorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred while connecting your account. Please try again."
}

// GetOAuthErrorMessageFromString returns a user-friendly error message from string
func GetOAuthErrorMessageFromString(code string) string {
	return GetOAuthErrorMessage(OAuthErrorCode(code))
}
