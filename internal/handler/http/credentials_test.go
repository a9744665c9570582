package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCredentialsHandler(c *fakeCredentialsService) *Handler {
	return newTestHandler(&service.Services{CredentialsService: c})
}

func TestManageCredentials_Success(t *testing.T) {
	h := newCredentialsHandler(&fakeCredentialsService{
		manageFn: func(_ context.Context, input models.CredentialsInput) (models.CredentialsResult, error) {
			assert.Equal(t, models.CredentialsActionSave, input.Action)
			assert.Equal(t, models.Some("x"), input.ClientID)
			assert.True(t, input.AvatarID.IsNull())
			assert.False(t, input.UserID.IsSet())
			return models.CredentialsResult{Success: true, Data: json.RawMessage(`{"saved":true}`)}, nil
		},
	})

	body := `{"action":"save","clientId":"x","avatarId":null}`
	rec := httptest.NewRecorder()
	h.manageCredentials(rec, httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"saved":true}}`, rec.Body.String())
}

func TestManageCredentials_MissingAction(t *testing.T) {
	h := newCredentialsHandler(&fakeCredentialsService{})

	rec := httptest.NewRecorder()
	h.manageCredentials(rec, httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManageCredentials_InvalidAction(t *testing.T) {
	h := newCredentialsHandler(&fakeCredentialsService{
		manageFn: func(context.Context, models.CredentialsInput) (models.CredentialsResult, error) {
			return models.CredentialsResult{}, service.ErrInvalidAction
		},
	})

	rec := httptest.NewRecorder()
	h.manageCredentials(rec, httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(`{"action":"delete"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeResult(t, rec).Success)
}

func TestManageCredentials_EndpointMessageIsRelayed(t *testing.T) {
	h := newCredentialsHandler(&fakeCredentialsService{
		manageFn: func(context.Context, models.CredentialsInput) (models.CredentialsResult, error) {
			return models.CredentialsResult{Success: false, Error: "avatar is locked"}, adapter.ErrConflict
		},
	})

	rec := httptest.NewRecorder()
	h.manageCredentials(rec, httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(`{"action":"unlock"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"avatar is locked"}`, rec.Body.String())
}

func TestManageCredentials_TransportError(t *testing.T) {
	h := newCredentialsHandler(&fakeCredentialsService{
		manageFn: func(context.Context, models.CredentialsInput) (models.CredentialsResult, error) {
			return models.CredentialsResult{}, adapter.ErrBadGateway
		},
	})

	rec := httptest.NewRecorder()
	h.manageCredentials(rec, httptest.NewRequest(http.MethodPost, "/api/credentials", strings.NewReader(`{"action":"fetch"}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, decodeResult(t, rec).Success)
}
