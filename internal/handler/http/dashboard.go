package http

import (
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
)

func (h *Handler) clients(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.DashboardService.ClientViews(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("loading client views failed")
		writeError(w, err)
		return
	}

	utils.WriteResult(w, views, nil, "", http.StatusOK)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.DashboardService.Summary(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("loading dashboard summary failed")
		writeError(w, err)
		return
	}

	utils.WriteResult(w, summary, nil, "", http.StatusOK)
}

// me returns the client owned by the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoUserID)
		return
	}

	view, err := h.services.DashboardService.MyClient(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("user_id", userID).Msg("loading own client failed")
		writeError(w, err)
		return
	}

	utils.WriteResult(w, view, nil, "", http.StatusOK)
}
