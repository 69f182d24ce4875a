package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"salon-api/modules/calendar/controller"
	"salon-api/modules/calendar/entity"
	"salon-api/modules/calendar/router"
	"salon-api/modules/calendar/service"
)

type memoryStore struct {
	records map[string]entity.TokenRecord
}

func (m *memoryStore) Save(_ context.Context, uid string, record entity.TokenRecord) error {
	m.records[uid] = record
	return nil
}

func (m *memoryStore) Get(_ context.Context, uid string) (*entity.TokenRecord, error) {
	record, ok := m.records[uid]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (m *memoryStore) Delete(_ context.Context, uid string) error {
	delete(m.records, uid)
	return nil
}

func newTestServer(t *testing.T, store *memoryStore, factory service.ClientFactory) *echo.Echo {
	t.Helper()
	svc := service.NewCalendarServiceWithFactory(store, factory)
	e := echo.New()
	router.NewCalendarRouter(controller.NewCalendarController(svc)).Setup(e)
	return e
}

func panicFactory(context.Context, string) (*calendar.Service, error) {
	panic("factory must not be called")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusEndpoint(t *testing.T) {
	store := &memoryStore{records: map[string]entity.TokenRecord{
		"user123": {RefreshToken: "abc"},
		"user456": {AccessToken: "access-only"},
	}}
	e := newTestServer(t, store, panicFactory)

	tests := []struct {
		name          string
		query         string
		wantStatus    int
		wantConnected bool
		wantError     string
	}{
		{"missing uid", "", http.StatusBadRequest, false, "Missing or invalid uid"},
		{"uid too short", "?uid=abc", http.StatusBadRequest, false, "Missing or invalid uid"},
		{"connected", "?uid=user123", http.StatusOK, true, ""},
		{"no refresh token", "?uid=user456", http.StatusOK, false, ""},
		{"never connected", "?uid=stranger99", http.StatusOK, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/calendar/status"+tt.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantConnected, body["connected"])
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}

func TestCreateEventEndpoint_NotConnected(t *testing.T) {
	store := &memoryStore{records: map[string]entity.TokenRecord{}}
	e := newTestServer(t, store, panicFactory)

	payload := `{"uid":"user123","dateService":"2025-11-30","title":"Cita","allDay":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/create-event", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No refresh token. Authorize first.", body["error"])
}

func TestCreateEventEndpoint_MissingData(t *testing.T) {
	store := &memoryStore{records: map[string]entity.TokenRecord{
		"user123": {RefreshToken: "abc"},
	}}
	e := newTestServer(t, store, panicFactory)

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/create-event", strings.NewReader(`{"uid":"user123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing event data", body["error"])
}

func TestDisconnectEndpoint(t *testing.T) {
	store := &memoryStore{records: map[string]entity.TokenRecord{
		"user123": {RefreshToken: "abc"},
	}}
	e := newTestServer(t, store, panicFactory)

	post := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/calendar/disconnect", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing uid", decodeBody(t, rec)["error"])

	rec = post(`{"uid":"user123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Token deleted", body["message"])
	assert.NotContains(t, store.records, "user123")

	// Disconnecting an already-disconnected uid still succeeds.
	rec = post(`{"uid":"user123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
