package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"linkdeck/internal/domain/social"
	"linkdeck/internal/shared/logger"
)

const (
	defaultBaseURL = "https://graph.facebook.com"
	// HTTP request timeout
	requestTimeout = 10 * time.Second
	// Maximum response body size for Graph API responses (1MB)
	maxResponseSize = 1 << 20
)

// APIError is the error object the Graph API embeds in response bodies.
// Its presence is the failure signal regardless of HTTP status code.
type APIError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api error (code %d, type %s): %s", e.Code, e.Type, e.Message)
}

// Config holds the app credentials and API version for a Client.
type Config struct {
	AppID     string
	AppSecret string
	Version   string
	// BaseURL overrides the Graph API host, used in tests.
	BaseURL string
}

// Client issues requests against the Facebook Graph API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	appID      string
	appSecret  string
	logger     logger.Interface
}

func NewClient(cfg Config, logger logger.Interface) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:   baseURL,
		version:   cfg.Version,
		appID:     cfg.AppID,
		appSecret: cfg.AppSecret,
		logger:    logger,
	}
}

// BuildURL builds a versioned Graph API URL from a path, query parameters,
// and an access token appended as a parameter. It performs no I/O.
func (c *Client) BuildURL(path string, params map[string]string, accessToken string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	if accessToken != "" {
		values.Set("access_token", accessToken)
	}
	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.version, path, values.Encode())
}

// GetUsername resolves an Instagram business account ID to its username.
func (c *Client) GetUsername(ctx context.Context, businessAccountID, accessToken string) (string, error) {
	reqURL := c.BuildURL(businessAccountID, map[string]string{
		"fields": "username",
	}, accessToken)

	var result struct {
		Username string `json:"username"`
	}
	if err := c.get(ctx, reqURL, &result); err != nil {
		return "", fmt.Errorf("failed to resolve username: %w", err)
	}

	return result.Username, nil
}

// ExchangeLongLivedToken exchanges a short-lived access token for a
// long-lived one using the fb_exchange_token grant.
func (c *Client) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (string, error) {
	reqURL := c.BuildURL("oauth/access_token", map[string]string{
		"grant_type":        "fb_exchange_token",
		"client_id":         c.appID,
		"client_secret":     c.appSecret,
		"fb_exchange_token": shortLivedToken,
	}, "")

	var result struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := c.get(ctx, reqURL, &result); err != nil {
		return "", fmt.Errorf("failed to exchange token: %w", err)
	}

	if result.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned empty access token")
	}

	return result.AccessToken, nil
}

// PublishingLimit reports content publishing quota for a business account.
type PublishingLimit struct {
	QuotaTotal    int `json:"quota_total"`
	QuotaDuration int `json:"quota_duration"`
	QuotaUsage    int `json:"quota_usage"`
}

// GetPublishingLimit fetches the content publishing quota configuration and
// current usage for a business account.
func (c *Client) GetPublishingLimit(ctx context.Context, businessAccountID, accessToken string) (*PublishingLimit, error) {
	reqURL := c.BuildURL(businessAccountID+"/content_publishing_limit", map[string]string{
		"fields": "config,quota_usage",
	}, accessToken)

	var result struct {
		Data []struct {
			Config struct {
				QuotaTotal    int `json:"quota_total"`
				QuotaDuration int `json:"quota_duration"`
			} `json:"config"`
			QuotaUsage int `json:"quota_usage"`
		} `json:"data"`
	}
	if err := c.get(ctx, reqURL, &result); err != nil {
		return nil, fmt.Errorf("failed to get publishing limit: %w", err)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("publishing limit response contained no data")
	}

	entry := result.Data[0]
	return &PublishingLimit{
		QuotaTotal:    entry.Config.QuotaTotal,
		QuotaDuration: entry.Config.QuotaDuration,
		QuotaUsage:    entry.QuotaUsage,
	}, nil
}

// ListInstagramCandidates lists the Facebook pages the user manages and
// flattens the ones with a connected Instagram business account into linking
// candidates.
func (c *Client) ListInstagramCandidates(ctx context.Context, userAccessToken string) ([]social.Candidate, error) {
	reqURL := c.BuildURL("me/accounts", map[string]string{
		"fields": "id,name,access_token,instagram_business_account{id,username,profile_picture_url}",
	}, userAccessToken)

	var result struct {
		Data []struct {
			ID                       string `json:"id"`
			Name                     string `json:"name"`
			AccessToken              string `json:"access_token"`
			InstagramBusinessAccount *struct {
				ID                string `json:"id"`
				Username          string `json:"username"`
				ProfilePictureURL string `json:"profile_picture_url"`
			} `json:"instagram_business_account"`
		} `json:"data"`
	}
	if err := c.get(ctx, reqURL, &result); err != nil {
		return nil, fmt.Errorf("failed to list managed pages: %w", err)
	}

	candidates := make([]social.Candidate, 0, len(result.Data))
	for _, page := range result.Data {
		if page.InstagramBusinessAccount == nil {
			continue
		}
		candidates = append(candidates, social.Candidate{
			InstagramBusinessAccountID: page.InstagramBusinessAccount.ID,
			Username:                   page.InstagramBusinessAccount.Username,
			AccountName:                page.Name,
			FacebookPageID:             page.ID,
			PageAccessToken:            page.AccessToken,
			ProfilePictureURL:          page.InstagramBusinessAccount.ProfilePictureURL,
		})
	}

	c.logger.Debugw("listed instagram candidates",
		"pages", len(result.Data),
		"candidates", len(candidates),
	)

	return candidates, nil
}

// get issues a GET request and decodes the response envelope. A non-nil
// "error" field in the body is treated as failure even on HTTP 200.
func (c *Client) get(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}

	return nil
}
