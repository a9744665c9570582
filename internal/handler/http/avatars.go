package http

import (
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

func (h *Handler) createAvatar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateAvatarRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		log.Err(err).Msg("invalid avatar request")
		writeError(w, err)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoUserID)
		return
	}

	avatar, err := h.services.AvatarService.CreateAvatar(r.Context(), userID, req)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("avatar creation failed")
		writeError(w, err)
		return
	}

	utils.WriteResult(w, avatar, nil, "", http.StatusCreated)
}

func (h *Handler) sanitizeName(w http.ResponseWriter, r *http.Request) {
	var req models.SanitizeRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	name := h.services.AvatarService.SanitizeName(r.Context(), req.Name)

	utils.WriteJSON(w, models.SanitizeResponse{Name: name}, http.StatusOK)
}
