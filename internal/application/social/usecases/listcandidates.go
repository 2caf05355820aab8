package usecases

import (
	"context"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
	"linkdeck/internal/shared/logger"
)

type ListCandidatesCommand struct {
	State string
	Code  string
}

// ListCandidatesUseCase handles the picker callback: verify the one-time
// state, exchange the code for a short-lived user token, list the reachable
// Instagram business accounts, and drop the ones already linked.
type ListCandidatesUseCase struct {
	accountRepo social.InstagramAccountRepository
	oauthClient OAuthClient
	stateStore  StateStore
	graphClient GraphClient
	logger      logger.Interface
}

func NewListCandidatesUseCase(
	accountRepo social.InstagramAccountRepository,
	oauthClient OAuthClient,
	stateStore StateStore,
	graphClient GraphClient,
	logger logger.Interface,
) *ListCandidatesUseCase {
	return &ListCandidatesUseCase{
		accountRepo: accountRepo,
		oauthClient: oauthClient,
		stateStore:  stateStore,
		graphClient: graphClient,
		logger:      logger,
	}
}

func (uc *ListCandidatesUseCase) Execute(ctx context.Context, cmd ListCandidatesCommand) (uint, []social.Candidate, error) {
	userID, err := uc.stateStore.Consume(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("picker callback with invalid state", "error", err)
		return 0, nil, errors.NewUnauthorizedError("invalid or expired state")
	}

	userToken, err := uc.oauthClient.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange authorization code", "user_id", userID, "error", err)
		return 0, nil, errors.NewInternalError(ErrMsgConnectFailed)
	}

	candidates, err := uc.graphClient.ListInstagramCandidates(ctx, userToken)
	if err != nil {
		uc.logger.Errorw("failed to list instagram candidates", "user_id", userID, "error", err)
		return 0, nil, errors.NewInternalError(ErrMsgConnectFailed)
	}

	linked, err := uc.accountRepo.ListByUserID(userID)
	if err != nil {
		uc.logger.Errorw("failed to list linked accounts", "user_id", userID, "error", err)
		return 0, nil, errors.NewInternalError(ErrMsgConnectFailed)
	}

	filtered := social.FilterLinkedCandidates(candidates, linked)

	uc.logger.Infow("picker candidates resolved",
		"user_id", userID,
		"total", len(candidates),
		"offered", len(filtered))

	return userID, filtered, nil
}
