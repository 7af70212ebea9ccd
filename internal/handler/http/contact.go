package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

func (h *Handler) submitContactMessage(w http.ResponseWriter, r *http.Request) {
	var message models.ContactMessage
	if err := decodeJSON(w, r, &message); err != nil {
		writeServiceError(w, r, err, "invalid contact body")
		return
	}

	created, err := h.services.ContactService.Submit(r.Context(), message)
	if err != nil {
		writeServiceError(w, r, err, "error submitting contact message")
		return
	}

	_, _ = utils.WriteJSON(w, models.ContactCreatedResponse{
		ID:      created.ID,
		Message: "Contact message sent successfully",
	}, http.StatusCreated)
}

func (h *Handler) listContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.ContactService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing contact messages")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(messages), http.StatusOK)
}

func (h *Handler) getContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid contact message id")
		return
	}

	message, err := h.services.ContactService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting contact message")
		return
	}

	_, _ = utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) updateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid contact message id")
		return
	}

	var update models.ContactStatusUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, err, "invalid contact status body")
		return
	}

	message, err := h.services.ContactService.UpdateStatus(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, err, "error updating contact message")
		return
	}

	_, _ = utils.WriteJSON(w, message, http.StatusOK)
}

func (h *Handler) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid contact message id")
		return
	}

	if err = h.services.ContactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting contact message")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
