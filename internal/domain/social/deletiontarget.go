package social

import "fmt"

// Provider identifies a social platform.
type Provider string

const (
	ProviderInstagram Provider = "instagram"
	ProviderYoutube   Provider = "youtube"
	// ProviderTiktok has a connect button on the dashboard but no linking
	// flow yet.
	ProviderTiktok Provider = "tiktok"
)

// DeletionTarget identifies exactly one account to disconnect: an Instagram
// business account or a YouTube channel, never both.
type DeletionTarget struct {
	provider  Provider
	accountID string
}

func InstagramTarget(businessAccountID string) (DeletionTarget, error) {
	if businessAccountID == "" {
		return DeletionTarget{}, fmt.Errorf("instagram business account ID is required")
	}
	return DeletionTarget{provider: ProviderInstagram, accountID: businessAccountID}, nil
}

func YoutubeTarget(channelID string) (DeletionTarget, error) {
	if channelID == "" {
		return DeletionTarget{}, fmt.Errorf("youtube channel ID is required")
	}
	return DeletionTarget{provider: ProviderYoutube, accountID: channelID}, nil
}

func (t DeletionTarget) Provider() Provider {
	return t.provider
}

func (t DeletionTarget) AccountID() string {
	return t.accountID
}

func (t DeletionTarget) IsZero() bool {
	return t.provider == "" || t.accountID == ""
}

func (t DeletionTarget) String() string {
	return fmt.Sprintf("%s:%s", t.provider, t.accountID)
}
