package http

import (
	"net/http"

	"github.com/MKhiriev/go-label-keeper/internal/logger"
	"github.com/MKhiriev/go-label-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves its
// owner via [service.AuthService.Authenticate] and stores the user in the
// request context under [utils.UserCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header is not of the form "Bearer <token>".
//   - The token is expired, invalid, or owned by an unknown or blocked user.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("authentication failed")
			writeError(w, r, err)
			return
		}

		userLogger := log.With().Int64("user_id", user.UserID).Logger()
		ctx = userLogger.WithContext(utils.WithUser(ctx, &user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
