package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"salon-api/core/errors"
	"salon-api/modules/auth/controller"
	"salon-api/modules/auth/router"
)

type stubAuthService struct {
	authURL      string
	redirectURL  string
	callbackErr  *errors.AppError
	gotCode      string
	gotState     string
	callbackRuns int
}

func (s *stubAuthService) GetGoogleAuthURL(uid string) (string, *errors.AppError) {
	return s.authURL + "?state=" + uid, nil
}

func (s *stubAuthService) HandleGoogleCallback(_ context.Context, code, state string) (string, *errors.AppError) {
	s.callbackRuns++
	s.gotCode = code
	s.gotState = state
	if s.callbackErr != nil {
		return "", s.callbackErr
	}
	return s.redirectURL, nil
}

func newAuthTestServer(stub *stubAuthService) http.Handler {
	e := echo.New()
	router.NewAuthRouter(controller.NewAuthController(stub)).Setup(e)
	return e
}

func TestGoogleAuth_RedirectsToConsent(t *testing.T) {
	stub := &stubAuthService{authURL: "https://accounts.google.com/o/oauth2/auth"}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google?uid=user123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=user123", rec.Header().Get("Location"))
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	stub := &stubAuthService{}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback?state=user123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing code from Google OAuth")
	assert.Zero(t, stub.callbackRuns, "no exchange may happen without a code")
}

func TestGoogleCallback_Success(t *testing.T) {
	stub := &stubAuthService{redirectURL: "http://localhost:5173/?calendar=connected"}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback?code=abc&state=user123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:5173/?calendar=connected", rec.Header().Get("Location"))
	assert.Equal(t, "abc", stub.gotCode)
	assert.Equal(t, "user123", stub.gotState)
}

func TestGoogleCallback_ExchangeFailure(t *testing.T) {
	stub := &stubAuthService{
		callbackErr: errors.NewAppError(errors.ErrInternalServer, "failed to exchange token", nil),
	}
	e := newAuthTestServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to exchange token")
}
