package usecases

import (
	"context"
	"fmt"

	"linkdeck/internal/shared/logger"
)

// StartInstagramConnectUseCase begins the picker flow: issue a one-time state
// token and build the Facebook authorization URL.
type StartInstagramConnectUseCase struct {
	oauthClient OAuthClient
	stateStore  StateStore
	logger      logger.Interface
}

func NewStartInstagramConnectUseCase(
	oauthClient OAuthClient,
	stateStore StateStore,
	logger logger.Interface,
) *StartInstagramConnectUseCase {
	return &StartInstagramConnectUseCase{
		oauthClient: oauthClient,
		stateStore:  stateStore,
		logger:      logger,
	}
}

func (uc *StartInstagramConnectUseCase) Execute(ctx context.Context, userID uint) (string, error) {
	state, err := uc.stateStore.Issue(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to issue oauth state", "user_id", userID, "error", err)
		return "", fmt.Errorf("failed to start connect flow: %w", err)
	}

	return uc.oauthClient.GetAuthURL(state), nil
}
