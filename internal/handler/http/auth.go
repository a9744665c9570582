package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/service"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/MKhiriev/avatar-dashboard/models"
)

// tokenResponse is the data of a successful login or registration.
type tokenResponse struct {
	Token string `json:"token"`
}

// pendingResponse is the data of a registration that awaits confirmation.
type pendingResponse struct {
	ConfirmationPending bool `json:"confirmation_pending"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	writeToken(w, token, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AuthRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		log.Err(err).Msg("invalid registration request")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.Register(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrConfirmationPending):
		utils.WriteResult(w, pendingResponse{ConfirmationPending: true}, nil, "", http.StatusAccepted)
		return
	case err != nil:
		log.Err(err).Str("email", req.Email).Msg("registration failed")
		writeError(w, err)
		return
	}

	writeToken(w, token, http.StatusCreated)
}

// demo makes sure the demo account exists. Failures are reported in the body
// with a 502 so the client can show the backend message.
func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	result := h.services.DemoUserService.EnsureDemoUser(r.Context())

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}

	utils.WriteJSON(w, result, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	utils.WriteResult(w, nil, nil, "", http.StatusOK)
}

func writeToken(w http.ResponseWriter, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteResult(w, tokenResponse{Token: token.SignedString}, nil, "", status)
}
