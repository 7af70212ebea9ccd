package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/metrics"
	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := decodeJSON(w, r, &registration); err != nil {
		writeServiceError(w, r, err, "invalid registration body")
		return
	}

	user, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		h.recordAuthOutcome(metrics.AuthActionRegister, err)
		writeServiceError(w, r, err, "registration failed")
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		h.recordAuthOutcome(metrics.AuthActionRegister, err)
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	h.metrics.RecordAuthOutcome(metrics.AuthActionRegister, metrics.AuthOutcomeSuccess)
	log.Info().Int64("id", user.ID).Msg("user registered")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "Registration successful",
		User:    user,
		Token:   token,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeServiceError(w, r, err, "invalid login body")
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.recordAuthOutcome(metrics.AuthActionLogin, err)
		writeServiceError(w, r, err, "login failed")
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		h.recordAuthOutcome(metrics.AuthActionLogin, err)
		writeServiceError(w, r, err, "creation of token failed")
		return
	}

	h.metrics.RecordAuthOutcome(metrics.AuthActionLogin, metrics.AuthOutcomeSuccess)
	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, http.StatusOK)
}

// logout is advisory: tokens are stateless and stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Logout successful"}, http.StatusOK)
}

// currentUser returns the caller's token claims as a user.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	identity := identityFromRequest(r)
	_, _ = utils.WriteJSON(w, identity.User.User(), http.StatusOK)
}

func (h *Handler) recordAuthOutcome(action string, err error) {
	outcome := metrics.AuthOutcomeRejected
	if status, _ := statusFromError(err); status >= http.StatusInternalServerError {
		outcome = metrics.AuthOutcomeError
	}
	h.metrics.RecordAuthOutcome(action, outcome)
}
