package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/infrastructure/graph"
	"linkdeck/internal/shared/errors"
	"linkdeck/internal/shared/logger"
)

// GetPublishingLimitUseCase proxies the Graph content publishing quota for a
// linked account, using its stored long-lived token.
type GetPublishingLimitUseCase struct {
	accountRepo social.InstagramAccountRepository
	graphClient GraphClient
	logger      logger.Interface
}

func NewGetPublishingLimitUseCase(
	accountRepo social.InstagramAccountRepository,
	graphClient GraphClient,
	logger logger.Interface,
) *GetPublishingLimitUseCase {
	return &GetPublishingLimitUseCase{
		accountRepo: accountRepo,
		graphClient: graphClient,
		logger:      logger,
	}
}

func (uc *GetPublishingLimitUseCase) Execute(ctx context.Context, userID uint, businessAccountID string) (*graph.PublishingLimit, error) {
	account, err := uc.accountRepo.GetByBusinessAccountID(userID, businessAccountID)
	if err != nil {
		return nil, err
	}

	limit, err := uc.graphClient.GetPublishingLimit(ctx, account.InstagramBusinessAccountID, account.AccessToken)
	if err != nil {
		uc.logger.Errorw("failed to fetch publishing limit",
			"user_id", userID,
			"instagram_business_account_id", businessAccountID,
			"error", err)
		return nil, errors.NewInternalError("error fetching publishing limit")
	}

	return limit, nil
}
