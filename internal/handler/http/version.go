package http

import (
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

type versionResponse struct {
	Version string `json:"version"`
	models.AppBuildInfo
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	utils.WriteJSON(w, versionResponse{
		Version:      info.GetAppVersion(r.Context()),
		AppBuildInfo: info.GetBuildInfo(r.Context()),
	}, http.StatusOK)
}
