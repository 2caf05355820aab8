package usecases

import (
	"context"
	"encoding/json"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
	"linkdeck/internal/shared/logger"
)

// ErrMsgConnectFailed is the only failure detail exposed to callers; the
// internal cause is logged with the full step trace.
const ErrMsgConnectFailed = "error connecting your account"

type ConnectInstagramAccountCommand struct {
	UserID                     uint
	AccountName                string
	FacebookPageID             string
	InstagramBusinessAccountID string
	AccessToken                string
	ProfilePictureURL          string
}

type ConnectInstagramAccountResult struct {
	InstagramBusinessAccountID string
}

// connectTrace accumulates the state of each connect step so a failure log
// carries everything needed to diagnose it.
type connectTrace struct {
	Step               string `json:"step"`
	Username           string `json:"username,omitempty"`
	TokenExchanged     bool   `json:"token_exchanged"`
	ProfilePicturePath string `json:"profile_picture_path,omitempty"`
}

// ConnectInstagramAccountUseCase runs the linking pipeline: resolve username,
// exchange the short-lived token, re-host the profile picture, insert the row.
// Each step is gated on the previous one.
type ConnectInstagramAccountUseCase struct {
	accountRepo social.InstagramAccountRepository
	graphClient GraphClient
	mediaStore  MediaStore
	viewCache   ViewCache
	logger      logger.Interface
}

func NewConnectInstagramAccountUseCase(
	accountRepo social.InstagramAccountRepository,
	graphClient GraphClient,
	mediaStore MediaStore,
	viewCache ViewCache,
	logger logger.Interface,
) *ConnectInstagramAccountUseCase {
	return &ConnectInstagramAccountUseCase{
		accountRepo: accountRepo,
		graphClient: graphClient,
		mediaStore:  mediaStore,
		viewCache:   viewCache,
		logger:      logger,
	}
}

func (uc *ConnectInstagramAccountUseCase) Execute(ctx context.Context, cmd ConnectInstagramAccountCommand) (*ConnectInstagramAccountResult, error) {
	trace := connectTrace{Step: "resolve_username"}

	username, err := uc.graphClient.GetUsername(ctx, cmd.InstagramBusinessAccountID, cmd.AccessToken)
	if err != nil {
		return nil, uc.fail(cmd, trace, err)
	}
	trace.Username = username

	trace.Step = "exchange_token"
	longLivedToken, err := uc.graphClient.ExchangeLongLivedToken(ctx, cmd.AccessToken)
	if err != nil {
		return nil, uc.fail(cmd, trace, err)
	}
	trace.TokenExchanged = true

	trace.Step = "rehost_profile_picture"
	picturePath := ""
	if cmd.ProfilePictureURL != "" {
		picturePath, err = uc.mediaStore.RehostProfilePicture(ctx, cmd.ProfilePictureURL,
			cmd.UserID, social.ProviderInstagram, cmd.InstagramBusinessAccountID)
		if err != nil {
			return nil, uc.fail(cmd, trace, err)
		}
		trace.ProfilePicturePath = picturePath
	}

	trace.Step = "persist_account"
	accountName := cmd.AccountName
	if accountName == "" {
		accountName = username
	}
	account, err := social.NewInstagramAccount(cmd.UserID, accountName, cmd.FacebookPageID,
		cmd.InstagramBusinessAccountID, longLivedToken, picturePath)
	if err != nil {
		return nil, uc.fail(cmd, trace, err)
	}

	if raw, marshalErr := json.Marshal(map[string]string{
		"username":            username,
		"account_name":        accountName,
		"facebook_page_id":    cmd.FacebookPageID,
		"profile_picture_url": cmd.ProfilePictureURL,
	}); marshalErr == nil {
		account.AttachRawAccountInfo(raw)
	}

	if err := uc.accountRepo.Create(account); err != nil {
		// Re-hosted media is left in place; the storage path is deterministic
		// and a retry overwrites it.
		return nil, uc.fail(cmd, trace, err)
	}

	uc.viewCache.Invalidate(ctx, cmd.UserID)

	uc.logger.Infow("instagram account connected",
		"user_id", cmd.UserID,
		"instagram_business_account_id", cmd.InstagramBusinessAccountID,
		"username", username)

	return &ConnectInstagramAccountResult{
		InstagramBusinessAccountID: cmd.InstagramBusinessAccountID,
	}, nil
}

func (uc *ConnectInstagramAccountUseCase) fail(cmd ConnectInstagramAccountCommand, trace connectTrace, err error) error {
	uc.logger.Errorw("failed to connect instagram account",
		"user_id", cmd.UserID,
		"instagram_business_account_id", cmd.InstagramBusinessAccountID,
		"step", trace.Step,
		"username", trace.Username,
		"token_exchanged", trace.TokenExchanged,
		"profile_picture_path", trace.ProfilePicturePath,
		"error", err)
	return errors.NewInternalError(ErrMsgConnectFailed)
}
