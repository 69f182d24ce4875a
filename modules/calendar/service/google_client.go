package service

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"salon-api/core/config"
	"salon-api/core/constants"
	"salon-api/core/logger"
)

// ClientFactory builds an authorized Calendar API client from a stored
// refresh token.
type ClientFactory func(ctx context.Context, refreshToken string) (*calendar.Service, error)

// NewGoogleCalendarClient exchanges the refresh token for a current access
// token before returning. The eager round-trip surfaces revoked consent at
// the point of use instead of on the first API call; callers must treat a
// failure as "reauthorization required".
func NewGoogleCalendarClient(ctx context.Context, refreshToken string) (*calendar.Service, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is empty")
	}

	cfg, ok := config.GetSafe()
	if !ok {
		return nil, fmt.Errorf("config not initialized")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{constants.GoogleCalendarScope},
		Endpoint:     google.Endpoint,
	}

	source := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		logger.Error("GoogleCalendarClient:TokenRefresh:Error", "error", err)
		return nil, fmt.Errorf("refreshing access token: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauth2.ReuseTokenSource(token, source)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}

	return svc, nil
}
