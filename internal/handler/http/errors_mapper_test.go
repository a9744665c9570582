package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/app"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidJSON, http.StatusBadRequest},
		{service.ErrInvalidAction, http.StatusBadRequest},
		{fmt.Errorf("%w: %w", service.ErrInvalidCredentials, adapter.ErrBadRequest), http.StatusUnauthorized},
		{fmt.Errorf("create avatar: %w", adapter.ErrBadRequest), http.StatusBadRequest},
		{store.ErrClientNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrAvatarAlreadyExists), http.StatusConflict},
		{adapter.ErrNotConfigured, http.StatusServiceUnavailable},
		{adapter.ErrEmptyResponse, http.StatusBadGateway},
		{service.ErrLogoNotConfigured, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, rec.Body.String())
}

func TestWriteError_FixedMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %w", service.ErrInvalidCredentials, adapter.ErrBadRequest), app.MsgInvalidLoginPassword},
		{adapter.ErrNotConfigured, app.MsgBackendUnavailable},
		{ErrNoUserID, app.MsgNoUserIDProvided},
		{service.ErrVersionIsNotSpecified, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)
			assert.Equal(t, tt.want, decodeResult(t, rec).Error)
		})
	}
}

func TestWriteError_KeepsClientMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, service.ErrInvalidAction)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid credentials action"}`, rec.Body.String())
}

func TestWriteError_BackendBadRequestOutsideLogin(t *testing.T) {
	tests := []error{
		fmt.Errorf("avatar creation ended with error: %w",
			fmt.Errorf("create avatar: %w", fmt.Errorf("%w: duplicate slug", adapter.ErrBadRequest))),
		fmt.Errorf("manage credentials: %w", adapter.ErrBadRequest),
	}

	for _, err := range tests {
		t.Run(err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEqual(t, app.MsgInvalidLoginPassword, decodeResult(t, rec).Error)
		})
	}
}
