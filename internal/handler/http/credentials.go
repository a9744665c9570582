package http

import (
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// manageCredentials forwards a credentials request. The endpoint's own
// result is relayed as is; on failure its message takes precedence over
// the Go error.
func (h *Handler) manageCredentials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.CredentialsInput
	if err := h.decodeAndValidate(w, r, &input); err != nil {
		log.Err(err).Msg("invalid credentials request")
		writeError(w, err)
		return
	}

	result, err := h.services.CredentialsService.Manage(r.Context(), input)
	if err != nil {
		log.Err(err).Str("action", string(input.Action)).Msg("credentials request failed")
		if result.Error != "" {
			utils.WriteJSON(w, result, statusFromError(err))
			return
		}
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
