package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/fit-journal/internal/app"
	"github.com/MKhiriev/fit-journal/internal/logger"
	"github.com/MKhiriev/fit-journal/internal/utils"
)

// auth is the authentication gate.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and, on success, stores the user id in
// the request context under [utils.UserIDCtxKey]. Requests without a header,
// with a malformed header or with an expired or invalid token are rejected
// with 401 and a JSON error body; the next handler is never called for them.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("missing authorization header")
			unauthorized(w, app.MsgMissingAuthorization)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			unauthorized(w, app.MsgInvalidAuthorization)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			unauthorized(w, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		recordUserID(ctx, token.UserID)
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="fit-journal"`)
	utils.WriteError(w, message, http.StatusUnauthorized)
}
