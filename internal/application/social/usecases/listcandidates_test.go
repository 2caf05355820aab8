package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/errors"
)

func TestListCandidatesUseCase_FiltersLinkedAccounts(t *testing.T) {
	stateStore := &mockStateStore{
		ConsumeFunc: func(ctx context.Context, state string) (uint, error) {
			assert.Equal(t, "state-token", state)
			return 42, nil
		},
	}
	oauthClient := &mockOAuthClient{
		ExchangeCodeFunc: func(ctx context.Context, code string) (string, error) {
			assert.Equal(t, "auth-code", code)
			return "user-token", nil
		},
	}
	graphClient := &mockGraphClient{
		ListInstagramCandidatesFunc: func(ctx context.Context, token string) ([]social.Candidate, error) {
			assert.Equal(t, "user-token", token)
			return []social.Candidate{
				{InstagramBusinessAccountID: "17841400000000001", Username: "already_linked"},
				{InstagramBusinessAccountID: "17841400000000002", Username: "fresh"},
			}, nil
		},
	}
	linked, err := social.NewInstagramAccount(42, "already_linked", "page-1", "17841400000000001", "tok", "")
	require.NoError(t, err)
	repo := &mockInstagramAccountRepo{
		ListByUserIDFunc: func(userID uint) ([]*social.InstagramAccount, error) {
			return []*social.InstagramAccount{linked}, nil
		},
	}

	uc := NewListCandidatesUseCase(repo, oauthClient, stateStore, graphClient, &mockLogger{})

	userID, candidates, err := uc.Execute(context.Background(), ListCandidatesCommand{
		State: "state-token",
		Code:  "auth-code",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	require.Len(t, candidates, 1)
	assert.Equal(t, "17841400000000002", candidates[0].InstagramBusinessAccountID)
}

func TestListCandidatesUseCase_InvalidState(t *testing.T) {
	stateStore := &mockStateStore{
		ConsumeFunc: func(ctx context.Context, state string) (uint, error) {
			return 0, fmt.Errorf("not found")
		},
	}
	exchanged := false
	oauthClient := &mockOAuthClient{
		ExchangeCodeFunc: func(ctx context.Context, code string) (string, error) {
			exchanged = true
			return "", nil
		},
	}

	uc := NewListCandidatesUseCase(&mockInstagramAccountRepo{}, oauthClient, stateStore, &mockGraphClient{}, &mockLogger{})

	_, _, err := uc.Execute(context.Background(), ListCandidatesCommand{State: "bogus", Code: "c"})
	require.Error(t, err)
	assert.False(t, exchanged, "code must not be exchanged without a valid state")

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestListCandidatesUseCase_GraphFailureIsGeneric(t *testing.T) {
	stateStore := &mockStateStore{
		ConsumeFunc: func(ctx context.Context, state string) (uint, error) { return 42, nil },
	}
	oauthClient := &mockOAuthClient{
		ExchangeCodeFunc: func(ctx context.Context, code string) (string, error) { return "user-token", nil },
	}
	graphClient := &mockGraphClient{
		ListInstagramCandidatesFunc: func(ctx context.Context, token string) ([]social.Candidate, error) {
			return nil, fmt.Errorf("graph exploded")
		},
	}

	uc := NewListCandidatesUseCase(&mockInstagramAccountRepo{}, oauthClient, stateStore, graphClient, &mockLogger{})

	_, _, err := uc.Execute(context.Background(), ListCandidatesCommand{State: "s", Code: "c"})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrMsgConnectFailed, appErr.Message)
}
