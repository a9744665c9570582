package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
)

const processedHeader = "X-Logo-Processed"

func (h *Handler) logo(w http.ResponseWriter, r *http.Request) {
	logo, err := h.services.LogoService.Logo(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("serving logo failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Header().Set(processedHeader, strconv.FormatBool(logo.Processed))
	utils.WriteBinary(w, logo.Data, logo.ContentType, http.StatusOK)
}
