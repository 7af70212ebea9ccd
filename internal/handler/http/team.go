package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

func (h *Handler) listTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.TeamService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing team members")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(members), http.StatusOK)
}

func (h *Handler) getTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid team member id")
		return
	}

	member, err := h.services.TeamService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting team member")
		return
	}

	_, _ = utils.WriteJSON(w, member, http.StatusOK)
}

func (h *Handler) createTeamMember(w http.ResponseWriter, r *http.Request) {
	var member models.TeamMember
	if err := decodeJSON(w, r, &member); err != nil {
		writeServiceError(w, r, err, "invalid team member body")
		return
	}

	created, err := h.services.TeamService.Create(r.Context(), member)
	if err != nil {
		writeServiceError(w, r, err, "error creating team member")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid team member id")
		return
	}

	var member models.TeamMember
	if err = decodeJSON(w, r, &member); err != nil {
		writeServiceError(w, r, err, "invalid team member body")
		return
	}
	member.ID = id

	updated, err := h.services.TeamService.Update(r.Context(), member)
	if err != nil {
		writeServiceError(w, r, err, "error updating team member")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid team member id")
		return
	}

	if err = h.services.TeamService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting team member")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
