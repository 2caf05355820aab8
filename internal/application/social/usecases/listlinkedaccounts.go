package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"linkdeck/internal/application/social/dto"
	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/logger"
)

// ListLinkedAccountsUseCase assembles the dashboard view of every linked
// account, cached per user.
type ListLinkedAccountsUseCase struct {
	accountRepo social.InstagramAccountRepository
	channelRepo social.YoutubeChannelRepository
	viewCache   ViewCache
	logger      logger.Interface
}

func NewListLinkedAccountsUseCase(
	accountRepo social.InstagramAccountRepository,
	channelRepo social.YoutubeChannelRepository,
	viewCache ViewCache,
	logger logger.Interface,
) *ListLinkedAccountsUseCase {
	return &ListLinkedAccountsUseCase{
		accountRepo: accountRepo,
		channelRepo: channelRepo,
		viewCache:   viewCache,
		logger:      logger,
	}
}

func (uc *ListLinkedAccountsUseCase) Execute(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error) {
	cached, err := uc.viewCache.Get(ctx, userID)
	if err != nil {
		uc.logger.Warnw("dashboard cache read failed", "user_id", userID, "error", err)
	} else if len(cached) > 0 {
		var view dto.LinkedAccountsResponse
		if unmarshalErr := json.Unmarshal(cached, &view); unmarshalErr == nil {
			return &view, nil
		}
		// Corrupt entry; fall through to the database.
		uc.viewCache.Invalidate(ctx, userID)
	}

	accounts, err := uc.accountRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list instagram accounts: %w", err)
	}

	channels, err := uc.channelRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list youtube channels: %w", err)
	}

	view := &dto.LinkedAccountsResponse{
		InstagramAccounts: make([]dto.LinkedInstagramAccount, 0, len(accounts)),
		YoutubeChannels:   make([]dto.LinkedYoutubeChannel, 0, len(channels)),
	}
	for _, a := range accounts {
		view.InstagramAccounts = append(view.InstagramAccounts, dto.LinkedInstagramAccount{
			AccountName:                a.AccountName,
			FacebookPageID:             a.FacebookPageID,
			InstagramBusinessAccountID: a.InstagramBusinessAccountID,
			ProfilePicturePath:         a.ProfilePicturePath,
			ConnectedAt:                a.CreatedAt,
		})
	}
	for _, c := range channels {
		view.YoutubeChannels = append(view.YoutubeChannels, dto.LinkedYoutubeChannel{
			ChannelID:          c.ChannelID,
			ChannelCustomURL:   c.ChannelCustomURL,
			ProfilePicturePath: c.ProfilePicturePath,
			ConnectedAt:        c.CreatedAt,
		})
	}

	if data, marshalErr := json.Marshal(view); marshalErr == nil {
		uc.viewCache.Set(ctx, userID, data)
	}

	return view, nil
}
