// Package http implements the REST transport of the portal.
// It provides middleware, route handlers, and request/response helpers.
// Identity resolution, tracing, access logging, rate limiting and metrics
// are handled at this layer before requests reach the service layer.
package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/access"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

// identify resolves the Authorization header of every request and stores the
// resulting [models.Identity] in the request context.
//
// A request without a bearer token continues as anonymous; routes that need
// a caller deny it later. A bearer token that fails verification is rejected
// with 401, including on routes where authentication is optional. Register,
// login and logout are mounted outside identify.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		identity := h.services.AuthService.ResolveIdentity(ctx, r.Header.Get("Authorization"))
		if errors.Is(identity.Err, service.ErrInvalidToken) {
			logger.FromRequest(r).Debug().Msg("request with invalid bearer token rejected")
			utils.WriteError(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuth denies anonymous callers with 401.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return h.requireAccess(access.RequireAuthenticated, next)
}

// requireAdmin denies anonymous callers with 401 and non-admins with 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return h.requireAccess(access.RequireAdmin, next)
}

func (h *Handler) requireAccess(decide func(models.Identity) error, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := decide(identityFromRequest(r)); err != nil {
			writeServiceError(w, r, err, "access denied")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// identityFromRequest returns the identity stored by identify. A request that
// bypassed it is anonymous.
func identityFromRequest(r *http.Request) models.Identity {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Anonymous(service.ErrMissingToken)
	}
	return identity
}
