package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/application/social/dto"
	"linkdeck/internal/interfaces/http/handlers/testutil"
	"linkdeck/internal/shared/errors"
)

type mockSocialAccountService struct {
	ConnectInstagramAccountFunc    func(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error)
	ConnectYoutubeChannelFunc      func(ctx context.Context, userID uint, req dto.ConnectYoutubeChannelRequest) (*dto.ConnectYoutubeChannelResponse, error)
	DisconnectInstagramAccountFunc func(ctx context.Context, userID uint, businessAccountID string) error
	DisconnectYoutubeChannelFunc   func(ctx context.Context, userID uint, channelID string) error
	ListLinkedAccountsFunc         func(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error)
	StartInstagramConnectFunc      func(ctx context.Context, userID uint) (*dto.InstagramConnectURLResponse, error)
	ListCandidatesFunc             func(ctx context.Context, state, code string) (*dto.ListCandidatesResponse, error)
	GetPublishingLimitFunc         func(ctx context.Context, userID uint, businessAccountID string) (*dto.PublishingLimitResponse, error)
}

func (m *mockSocialAccountService) ConnectInstagramAccount(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error) {
	return m.ConnectInstagramAccountFunc(ctx, userID, req)
}

func (m *mockSocialAccountService) ConnectYoutubeChannel(ctx context.Context, userID uint, req dto.ConnectYoutubeChannelRequest) (*dto.ConnectYoutubeChannelResponse, error) {
	return m.ConnectYoutubeChannelFunc(ctx, userID, req)
}

func (m *mockSocialAccountService) DisconnectInstagramAccount(ctx context.Context, userID uint, businessAccountID string) error {
	return m.DisconnectInstagramAccountFunc(ctx, userID, businessAccountID)
}

func (m *mockSocialAccountService) DisconnectYoutubeChannel(ctx context.Context, userID uint, channelID string) error {
	return m.DisconnectYoutubeChannelFunc(ctx, userID, channelID)
}

func (m *mockSocialAccountService) ListLinkedAccounts(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error) {
	return m.ListLinkedAccountsFunc(ctx, userID)
}

func (m *mockSocialAccountService) StartInstagramConnect(ctx context.Context, userID uint) (*dto.InstagramConnectURLResponse, error) {
	return m.StartInstagramConnectFunc(ctx, userID)
}

func (m *mockSocialAccountService) ListCandidates(ctx context.Context, state, code string) (*dto.ListCandidatesResponse, error) {
	return m.ListCandidatesFunc(ctx, state, code)
}

func (m *mockSocialAccountService) GetPublishingLimit(ctx context.Context, userID uint, businessAccountID string) (*dto.PublishingLimitResponse, error) {
	return m.GetPublishingLimitFunc(ctx, userID, businessAccountID)
}

func TestSocialAccountHandler_ListLinkedAccounts(t *testing.T) {
	service := &mockSocialAccountService{
		ListLinkedAccountsFunc: func(ctx context.Context, userID uint) (*dto.LinkedAccountsResponse, error) {
			assert.Equal(t, uint(42), userID)
			return &dto.LinkedAccountsResponse{
				InstagramAccounts: []dto.LinkedInstagramAccount{
					{InstagramBusinessAccountID: "17841400000000001", AccountName: "creator"},
				},
				YoutubeChannels: []dto.LinkedYoutubeChannel{},
			}, nil
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/accounts", nil)
	testutil.SetAuthContext(c, 42)

	handler.ListLinkedAccounts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var view dto.LinkedAccountsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &view))
	require.Len(t, view.InstagramAccounts, 1)
	assert.Equal(t, "creator", view.InstagramAccounts[0].AccountName)
}

func TestSocialAccountHandler_ListLinkedAccounts_Unauthenticated(t *testing.T) {
	handler := NewSocialAccountHandler(&mockSocialAccountService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/accounts", nil)

	handler.ListLinkedAccounts(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSocialAccountHandler_ConnectInstagramAccount(t *testing.T) {
	service := &mockSocialAccountService{
		ConnectInstagramAccountFunc: func(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error) {
			assert.Equal(t, uint(42), userID)
			assert.Equal(t, "17841400000000001", req.InstagramBusinessAccountID)
			assert.Equal(t, "EAAB-short", req.AccessToken)
			return &dto.ConnectInstagramAccountResponse{
				InstagramBusinessAccountID: req.InstagramBusinessAccountID,
			}, nil
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	body := dto.ConnectInstagramAccountRequest{
		AccountName:                "creator",
		FacebookPageID:             "page-1001",
		InstagramBusinessAccountID: "17841400000000001",
		AccessToken:                "EAAB-short",
		ProfilePictureURL:          "https://cdn.example.com/pic.jpg",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/social/instagram/accounts", body)
	testutil.SetAuthContext(c, 42)

	handler.ConnectInstagramAccount(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestSocialAccountHandler_ConnectInstagramAccount_MissingFields(t *testing.T) {
	handler := NewSocialAccountHandler(&mockSocialAccountService{}, testutil.NewMockLogger())

	body := map[string]string{"account_name": "creator"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/social/instagram/accounts", body)
	testutil.SetAuthContext(c, 42)

	handler.ConnectInstagramAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocialAccountHandler_ConnectInstagramAccount_GenericFailure(t *testing.T) {
	service := &mockSocialAccountService{
		ConnectInstagramAccountFunc: func(ctx context.Context, userID uint, req dto.ConnectInstagramAccountRequest) (*dto.ConnectInstagramAccountResponse, error) {
			return nil, errors.NewInternalError("error connecting your account")
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	body := dto.ConnectInstagramAccountRequest{
		FacebookPageID:             "page-1001",
		InstagramBusinessAccountID: "17841400000000001",
		AccessToken:                "EAAB-short",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/social/instagram/accounts", body)
	testutil.SetAuthContext(c, 42)

	handler.ConnectInstagramAccount(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "error connecting your account", resp.Error.Message)
}

func TestSocialAccountHandler_InstagramCallback(t *testing.T) {
	service := &mockSocialAccountService{
		ListCandidatesFunc: func(ctx context.Context, state, code string) (*dto.ListCandidatesResponse, error) {
			assert.Equal(t, "state-token", state)
			assert.Equal(t, "auth-code", code)
			return &dto.ListCandidatesResponse{
				Candidates: []dto.CandidateResponse{
					{InstagramBusinessAccountID: "17841400000000002", Username: "fresh"},
				},
			}, nil
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/instagram/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"state": "state-token", "code": "auth-code"})

	handler.InstagramCallback(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var payload dto.ListCandidatesResponse
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.Len(t, payload.Candidates, 1)
	assert.Equal(t, "fresh", payload.Candidates[0].Username)
}

func TestSocialAccountHandler_InstagramCallback_ProviderError(t *testing.T) {
	handler := NewSocialAccountHandler(&mockSocialAccountService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/instagram/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"error": "access_denied"})

	handler.InstagramCallback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "denied the authorization request")
}

func TestSocialAccountHandler_InstagramCallback_MissingParams(t *testing.T) {
	handler := NewSocialAccountHandler(&mockSocialAccountService{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/instagram/callback", nil)
	testutil.SetQueryParams(c, map[string]string{"state": "only-state"})

	handler.InstagramCallback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocialAccountHandler_DisconnectInstagramAccount(t *testing.T) {
	service := &mockSocialAccountService{
		DisconnectInstagramAccountFunc: func(ctx context.Context, userID uint, businessAccountID string) error {
			assert.Equal(t, uint(42), userID)
			assert.Equal(t, "17841400000000001", businessAccountID)
			return nil
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/social/instagram/accounts/17841400000000001", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "businessAccountID", "17841400000000001")

	handler.DisconnectInstagramAccount(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSocialAccountHandler_DisconnectYoutubeChannel_Failure(t *testing.T) {
	service := &mockSocialAccountService{
		DisconnectYoutubeChannelFunc: func(ctx context.Context, userID uint, channelID string) error {
			return errors.NewInternalError("error deleting your account")
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/social/youtube/channels/UC0001", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "channelID", "UC0001")

	handler.DisconnectYoutubeChannel(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "error deleting your account", resp.Error.Message)
}

func TestSocialAccountHandler_GetPublishingLimit(t *testing.T) {
	service := &mockSocialAccountService{
		GetPublishingLimitFunc: func(ctx context.Context, userID uint, businessAccountID string) (*dto.PublishingLimitResponse, error) {
			return &dto.PublishingLimitResponse{QuotaTotal: 25, QuotaDuration: 86400, QuotaUsage: 3}, nil
		},
	}
	handler := NewSocialAccountHandler(service, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/social/instagram/accounts/17841400000000001/publishing-limit", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "businessAccountID", "17841400000000001")

	handler.GetPublishingLimit(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var payload dto.PublishingLimitResponse
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	assert.Equal(t, 25, payload.QuotaTotal)
	assert.Equal(t, 3, payload.QuotaUsage)
}
