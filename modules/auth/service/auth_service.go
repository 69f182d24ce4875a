package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"salon-api/core/config"
	"salon-api/core/constants"
	"salon-api/core/errors"
	"salon-api/core/logger"
	"salon-api/modules/calendar/entity"
	"salon-api/modules/calendar/repository"
)

type AuthService interface {
	// GetGoogleAuthURL builds the consent redirect. The uid travels in the
	// OAuth state parameter; with no session, state is the only channel
	// that survives the redirect round-trip.
	GetGoogleAuthURL(uid string) (string, *errors.AppError)
	// HandleGoogleCallback exchanges the authorization code, persists the
	// token record, and returns the front-end URL to redirect to.
	HandleGoogleCallback(ctx context.Context, code, state string) (string, *errors.AppError)
}

type authService struct {
	store    repository.TokenStore
	endpoint oauth2.Endpoint
}

func NewAuthService(store repository.TokenStore) AuthService {
	return &authService{store: store, endpoint: google.Endpoint}
}

// NewAuthServiceWithEndpoint lets tests point the token exchange at a
// local server.
func NewAuthServiceWithEndpoint(store repository.TokenStore, endpoint oauth2.Endpoint) AuthService {
	return &authService{store: store, endpoint: endpoint}
}

func (s *authService) oauthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{constants.GoogleCalendarScope},
		Endpoint:     s.endpoint,
	}
}

func (s *authService) GetGoogleAuthURL(uid string) (string, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.RedirectURI == "" {
		return "", errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	// access_type=offline so a refresh token is issued, prompt=consent so
	// returning users get a fresh one on every authorization.
	authURL := s.oauthConfig(cfg).AuthCodeURL(uid,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	)
	return authURL, nil
}

func (s *authService) HandleGoogleCallback(ctx context.Context, code, state string) (string, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "config not initialized", nil)
	}

	// Correlation id ties together the log lines of one callback; the uid
	// alone is not enough when the same user retries the consent screen.
	callbackID := uuid.NewString()

	token, err := s.oauthConfig(cfg).Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange:Error", "error", err, "callback_id", callbackID)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to exchange token", err)
	}

	uid := state
	if uid == "" {
		// Known degraded mode: without state the token lands in a shared
		// bucket instead of blocking the flow.
		logger.Warn("AuthService:HandleGoogleCallback:NoUIDInState", "fallback", constants.AnonymousUID, "callback_id", callbackID)
		uid = constants.AnonymousUID
	}

	record := entity.TokenRecord{
		RefreshToken: token.RefreshToken,
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		record.Scope = scope
	}
	if !token.Expiry.IsZero() {
		record.ExpiryDate = token.Expiry.UnixMilli()
	}

	if err := s.store.Save(ctx, uid, record); err != nil {
		logger.Error("AuthService:HandleGoogleCallback:SaveToken:Error", "error", err, "uid", uid, "callback_id", callbackID)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to save token", err)
	}

	logger.Info("AuthService:HandleGoogleCallback:TokenSaved", "uid", uid, "callback_id", callbackID)
	return cfg.GoogleAPI.FrontendSuccessRedirect, nil
}
