package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/graph"
)

// GraphClient is the Graph API surface the use cases depend on.
type GraphClient interface {
	GetUsername(ctx context.Context, businessAccountID, accessToken string) (string, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, error)
	GetPublishingLimit(ctx context.Context, businessAccountID, accessToken string) (*graph.PublishingLimit, error)
	ListInstagramCandidates(ctx context.Context, userAccessToken string) ([]social.Candidate, error)
}

// MediaStore re-hosts remote profile pictures into object storage.
type MediaStore interface {
	RehostProfilePicture(ctx context.Context, sourceURL string, userID uint, provider social.Provider, accountID string) (string, error)
	DeleteAccountMedia(ctx context.Context, userID uint, provider social.Provider, accountID string) error
}

// OAuthClient drives the Facebook login leg of the picker flow.
type OAuthClient interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// StateStore issues and consumes one-time picker state tokens.
type StateStore interface {
	Issue(ctx context.Context, userID uint) (string, error)
	Consume(ctx context.Context, state string) (uint, error)
}

// ViewCache caches the serialized dashboard view per user. Get returns a nil
// slice on a miss.
type ViewCache interface {
	Get(ctx context.Context, userID uint) ([]byte, error)
	Set(ctx context.Context, userID uint, data []byte)
	Invalidate(ctx context.Context, userID uint)
}
