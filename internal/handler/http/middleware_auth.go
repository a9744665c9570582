package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/avatar-dashboard/internal/app"
	"github.com/MKhiriev/avatar-dashboard/internal/logger"
	"github.com/MKhiriev/avatar-dashboard/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// auth enforces a valid dashboard JWT. On success the user id and the
// backend access token carried by the token are stored in the request
// context (see utils.WithUser). Every rejection is a 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			message := app.MsgTokenIsExpiredOrInvalid
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = app.MsgTokenIsExpired
			}
			utils.WriteResult(w, nil, err, message, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.BackendToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
