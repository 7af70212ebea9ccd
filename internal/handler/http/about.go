package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

func (h *Handler) listAbout(w http.ResponseWriter, r *http.Request) {
	sections, err := h.services.AboutService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing about sections")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(sections), http.StatusOK)
}

func (h *Handler) getAboutSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid about section id")
		return
	}

	section, err := h.services.AboutService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting about section")
		return
	}

	_, _ = utils.WriteJSON(w, section, http.StatusOK)
}

func (h *Handler) createAboutSection(w http.ResponseWriter, r *http.Request) {
	var section models.AboutSection
	if err := decodeJSON(w, r, &section); err != nil {
		writeServiceError(w, r, err, "invalid about section body")
		return
	}

	created, err := h.services.AboutService.Create(r.Context(), section)
	if err != nil {
		writeServiceError(w, r, err, "error creating about section")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateAboutSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid about section id")
		return
	}

	var section models.AboutSection
	if err = decodeJSON(w, r, &section); err != nil {
		writeServiceError(w, r, err, "invalid about section body")
		return
	}
	section.ID = id

	updated, err := h.services.AboutService.Update(r.Context(), section)
	if err != nil {
		writeServiceError(w, r, err, "error updating about section")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAboutSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid about section id")
		return
	}

	if err = h.services.AboutService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting about section")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
