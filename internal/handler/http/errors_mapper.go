package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/adapter"
	"github.com/MKhiriev/avatar-dashboard/internal/app"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/internal/store"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
)

// errorStatusList is checked in order, so wrapped errors resolve to the most
// specific status first. A non-empty message replaces the error text.
var errorStatusList = []struct {
	target  error
	status  int
	message string
}{
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrValidation, http.StatusBadRequest, ""},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, ""},
	{ErrNoUserID, http.StatusUnauthorized, app.MsgNoUserIDProvided},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ""},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrInvalidAction, http.StatusBadRequest, ""},
	{service.ErrNotAuthenticated, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrLogoNotConfigured, http.StatusNotFound, ""},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, ""},

	{store.ErrClientNotFound, http.StatusNotFound, ""},
	{store.ErrAvatarAlreadyExists, http.StatusConflict, ""},

	{adapter.ErrBadRequest, http.StatusBadRequest, ""},
	{adapter.ErrUnauthorized, http.StatusUnauthorized, ""},
	{adapter.ErrForbidden, http.StatusForbidden, ""},
	{adapter.ErrNotFound, http.StatusNotFound, ""},
	{adapter.ErrConflict, http.StatusConflict, ""},
	{adapter.ErrUnprocessable, http.StatusUnprocessableEntity, ""},
	{adapter.ErrNotConfigured, http.StatusServiceUnavailable, app.MsgBackendUnavailable},
	{adapter.ErrBadGateway, http.StatusBadGateway, ""},
	{adapter.ErrInternalServerError, http.StatusBadGateway, ""},
	{adapter.ErrEmptyResponse, http.StatusBadGateway, ""},
}

func statusFromError(err error) int {
	status, _ := resolveError(err)
	return status
}

// resolveError returns the status for err and the text the client sees.
// Internal failures never expose their error text.
func resolveError(err error) (int, string) {
	for _, e := range errorStatusList {
		if !errors.Is(err, e.target) {
			continue
		}
		switch {
		case e.status == http.StatusInternalServerError:
			return e.status, app.MsgInternalServerError
		case e.message != "":
			return e.status, e.message
		default:
			return e.status, err.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := resolveError(err)
	utils.WriteResult(w, nil, err, message, status)
}
