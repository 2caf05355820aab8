package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

type FacebookOAuthConfig struct {
	AppID       string
	AppSecret   string
	RedirectURL string
}

// FacebookOAuthClient drives the server side of the Instagram account picker:
// the user authorizes the app on Facebook, and the callback code is exchanged
// for a short-lived user token used to enumerate managed pages.
type FacebookOAuthClient struct {
	config *oauth2.Config
}

func NewFacebookOAuthClient(cfg FacebookOAuthConfig) *FacebookOAuthClient {
	return &FacebookOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"pages_show_list",
				"instagram_basic",
				"business_management",
			},
			Endpoint: facebook.Endpoint,
		},
	}
}

// GetAuthURL returns the authorization URL the dashboard redirects the user
// to. The state token must be verified on callback.
func (c *FacebookOAuthClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// ExchangeCode exchanges the callback authorization code for a short-lived
// user access token.
func (c *FacebookOAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}
