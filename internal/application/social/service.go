package social

import (
	"context"

	"linkdeck/internal/application/social/dto"
	"linkdeck/internal/application/social/usecases"
	domainSocial "linkdeck/internal/domain/social"
	"linkdeck/internal/shared/logger"
)

// Service is the application service that orchestrates the linking use cases.
type Service struct {
	connectInstagramUC *usecases.ConnectInstagramAccountUseCase
	connectYoutubeUC   *usecases.ConnectYoutubeChannelUseCase
	disconnectUC       *usecases.DisconnectAccountUseCase
	listAccountsUC     *usecases.ListLinkedAccountsUseCase
	startConnectUC     *usecases.StartInstagramConnectUseCase
	listCandidatesUC   *usecases.ListCandidatesUseCase
	publishingLimitUC  *usecases.GetPublishingLimitUseCase
	logger             logger.Interface
}

// NewService wires every use case with its dependencies.
func NewService(
	accountRepo domainSocial.InstagramAccountRepository,
	channelRepo domainSocial.YoutubeChannelRepository,
	graphClient usecases.GraphClient,
	mediaStore usecases.MediaStore,
	oauthClient usecases.OAuthClient,
	stateStore usecases.StateStore,
	viewCache usecases.ViewCache,
	logger logger.Interface,
) *Service {
	return &Service{
		connectInstagramUC: usecases.NewConnectInstagramAccountUseCase(accountRepo, graphClient, mediaStore, viewCache, logger),
		connectYoutubeUC:   usecases.NewConnectYoutubeChannelUseCase(channelRepo, mediaStore, viewCache, logger),
		disconnectUC:       usecases.NewDisconnectAccountUseCase(accountRepo, channelRepo, mediaStore, viewCache, logger),
		listAccountsUC:     usecases.NewListLinkedAccountsUseCase(accountRepo, channelRepo, viewCache, logger),
		startConnectUC:     usecases.NewStartInstagramConnectUseCase(oauthClient, stateStore, logger),
		listCandidatesUC:   usecases.NewListCandidatesUseCase(accountRepo, oauthClient, stateStore, graphClient, logger),
		publishingLimitUC:  usecases.NewGetPublishingLimitUseCase(accountRepo, graphClient, logger),
		logger:             logger,
	}
}

// ConnectInstagramAccount links a picked Instagram business account.
func (s *Service) ConnectInstagramAccount(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error) {
	result, err := s.connectInstagramUC.Execute(ctx, usecases.ConnectInstagramAccountCommand{
		UserID:                     userID,
		AccountName:                req.AccountName,
		FacebookPageID:             req.FacebookPageID,
		InstagramBusinessAccountID: req.InstagramBusinessAccountID,
		AccessToken:                req.AccessToken,
		ProfilePictureURL:          req.ProfilePictureURL,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConnectInstagramAccountResponse{
		InstagramBusinessAccountID: result.InstagramBusinessAccountID,
	}, nil
}

// ConnectYoutubeChannel links a YouTube channel.
func (s *Service) ConnectYoutubeChannel(ctx context.Context, userID uint, req dto.ConnectYoutubeChannelRequest) (*dto.ConnectYoutubeChannelResponse, error) {
	result, err := s.connectYoutubeUC.Execute(ctx, usecases.ConnectYoutubeChannelCommand{
		UserID:            userID,
		ChannelID:         req.ChannelID,
		ChannelCustomURL:  req.ChannelCustomURL,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConnectYoutubeChannelResponse{ChannelID: result.ChannelID}, nil
}

// DisconnectInstagramAccount removes a linked Instagram account.
func (s *Service) DisconnectInstagramAccount(ctx context.Context, userID uint, businessAccountID string) error {
	target, err := domainSocial.InstagramTarget(businessAccountID)
	if err != nil {
		return err
	}
	return s.disconnectUC.Execute(ctx, userID, target)
}

// DisconnectYoutubeChannel removes a linked YouTube channel.
func (s *Service) DisconnectYoutubeChannel(ctx context.Context, userID uint, channelID string) error {
	target, err := domainSocial.YoutubeTarget(channelID)
	if err != nil {
		return err
	}
	return s.disconnectUC.Execute(ctx, userID, target)
}

// ListLinkedAccounts returns the dashboard view.
func (s *Service) ListLinkedAccounts(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error) {
	return s.listAccountsUC.Execute(ctx, userID)
}

// StartInstagramConnect returns the picker authorization URL.
func (s *Service) StartInstagramConnect(ctx context.Context, userID uint) (*dto.InstagramConnectURLResponse, error) {
	authURL, err := s.startConnectUC.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.InstagramConnectURLResponse{AuthURL: authURL}, nil
}

// ListCandidates resolves the picker callback into connectable accounts.
func (s *Service) ListCandidates(ctx context.Context, state, code string) (*dto.ListCandidatesResponse, error) {
	_, candidates, err := s.listCandidatesUC.Execute(ctx, usecases.ListCandidatesCommand{
		State: state,
		Code:  code,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ListCandidatesResponse{
		Candidates: make([]dto.CandidateResponse, 0, len(candidates)),
	}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, dto.CandidateResponse{
			InstagramBusinessAccountID: c.InstagramBusinessAccountID,
			Username:                   c.Username,
			AccountName:                c.AccountName,
			FacebookPageID:             c.FacebookPageID,
			PageAccessToken:            c.PageAccessToken,
			ProfilePictureURL:          c.ProfilePictureURL,
		})
	}
	return resp, nil
}

// GetPublishingLimit returns the publishing quota for a linked account.
func (s *Service) GetPublishingLimit(ctx context.Context, userID uint, businessAccountID string) (*dto.PublishingLimitResponse, error) {
	limit, err := s.publishingLimitUC.Execute(ctx, userID, businessAccountID)
	if err != nil {
		return nil, err
	}
	return &dto.PublishingLimitResponse{
		QuotaTotal:    limit.QuotaTotal,
		QuotaDuration: limit.QuotaDuration,
		QuotaUsage:    limit.QuotaUsage,
	}, nil
}
