package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/access"
	"github.com/MKhiriev/invest-portal/internal/logger"
	"github.com/MKhiriev/invest-portal/internal/service"
	"github.com/MKhiriev/invest-portal/internal/store"
	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is matched top to bottom; the first target found in the
// error chain decides the status. The target's text is sent to the client.
var errorStatusTable = []errorStatus{
	{service.ErrMissingToken, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{access.ErrAuthenticationRequired, http.StatusUnauthorized},

	{access.ErrAdminAccessRequired, http.StatusForbidden},
	{access.ErrNotResourceOwner, http.StatusForbidden},

	{store.ErrUsernameAlreadyExists, http.StatusBadRequest},
	{store.ErrSlugAlreadyExists, http.StatusBadRequest},
	{store.ErrInvestmentGroupInUse, http.StatusBadRequest},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrTeamMemberNotFound, http.StatusNotFound},
	{store.ErrNewsArticleNotFound, http.StatusNotFound},
	{store.ErrAboutSectionNotFound, http.StatusNotFound},
	{store.ErrContactMessageNotFound, http.StatusNotFound},
	{store.ErrParentCommentNotFound, http.StatusNotFound},
	{store.ErrCommentNotFound, http.StatusNotFound},
	{store.ErrInvestmentGroupNotFound, http.StatusNotFound},
	{store.ErrInvestmentNotFound, http.StatusNotFound},
}

// statusFromError returns the response status and the client-safe message
// for err. Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	if validationErr, ok := validators.AsValidationError(err); ok {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target.Error()
		}
	}

	return http.StatusInternalServerError, ErrInternalServer.Error()
}

// writeServiceError maps err to a JSON error response. Server-side failures
// are logged with the request's trace id; their cause never reaches the
// client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
