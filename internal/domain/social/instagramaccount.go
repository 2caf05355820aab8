package social

import (
	"fmt"
	"time"

	"linkdeck/internal/shared/biztime"
)

// InstagramAccount is a linked Instagram business account. Rows are never
// mutated in place: re-linking the same account deletes and re-inserts.
type InstagramAccount struct {
	ID                         uint
	UserID                     uint
	AccountName                string
	FacebookPageID             string
	InstagramBusinessAccountID string
	AccessToken                string
	ProfilePicturePath         string
	RawAccountInfo             []byte
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

func NewInstagramAccount(userID uint, accountName, facebookPageID, businessAccountID, accessToken, profilePicturePath string) (*InstagramAccount, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if businessAccountID == "" {
		return nil, fmt.Errorf("instagram business account ID is required")
	}
	if facebookPageID == "" {
		return nil, fmt.Errorf("facebook page ID is required")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}

	now := biztime.NowUTC()
	return &InstagramAccount{
		UserID:                     userID,
		AccountName:                accountName,
		FacebookPageID:             facebookPageID,
		InstagramBusinessAccountID: businessAccountID,
		AccessToken:                accessToken,
		ProfilePicturePath:         profilePicturePath,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}, nil
}

// AttachRawAccountInfo stores the raw Graph API payload the account was
// created from, for later troubleshooting.
func (a *InstagramAccount) AttachRawAccountInfo(raw []byte) {
	a.RawAccountInfo = raw
}

type InstagramAccountRepository interface {
	Create(account *InstagramAccount) error
	GetByBusinessAccountID(userID uint, businessAccountID string) (*InstagramAccount, error)
	ListByUserID(userID uint) ([]*InstagramAccount, error)
	// DeleteByBusinessAccountID removes the row for the given user and
	// business account. Deleting an absent row is not an error; the returned
	// count is the number of rows removed.
	DeleteByBusinessAccountID(userID uint, businessAccountID string) (int64, error)
}
