package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication and
// account-state authorization.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to an active user via [service.AuthService.Authorize], and — on
// success — stores the resolved user in the request context under
// [utils.UserCtxKey] before delegating to the next handler.
//
// The gate is linear and each step is terminal on failure:
//   - The "Authorization" header is absent → 401 ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token → 401
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, tampered with, malformed, or its subject is
//     unknown → 401 "could not validate credentials".
//   - The resolved account is disabled → 400 "inactive user".
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authorize(ctx, tokenString)

		if err != nil {
			switch {
			case errors.Is(err, service.ErrInactiveUser):
				log.Err(err).Msg("disabled account rejected")
				http.Error(w, service.ErrInactiveUser.Error(), http.StatusBadRequest)
				return
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, store.ErrNoUserWasFound):
				log.Err(err).Msg("could not validate credentials")
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during token authorization")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
