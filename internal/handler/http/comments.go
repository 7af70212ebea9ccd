package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

// listComments lists comments newest first, optionally narrowed to one page
// with ?pageId=.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	filter := models.CommentFilter{PageID: r.URL.Query().Get("pageId")}

	comments, err := h.services.CommentService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "error listing comments")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(comments), http.StatusOK)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid comment id")
		return
	}

	comment, err := h.services.CommentService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting comment")
		return
	}

	_, _ = utils.WriteJSON(w, comment, http.StatusOK)
}

// createComment posts a comment as the caller, or as a named guest when the
// request carries no token.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var comment models.Comment
	if err := decodeJSON(w, r, &comment); err != nil {
		writeServiceError(w, r, err, "invalid comment body")
		return
	}

	created, err := h.services.CommentService.Create(r.Context(), identityFromRequest(r), comment)
	if err != nil {
		writeServiceError(w, r, err, "error creating comment")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid comment id")
		return
	}

	var update models.CommentUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, err, "invalid comment body")
		return
	}

	updated, err := h.services.CommentService.Update(r.Context(), identityFromRequest(r), id, update)
	if err != nil {
		writeServiceError(w, r, err, "error updating comment")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid comment id")
		return
	}

	if err = h.services.CommentService.Delete(r.Context(), identityFromRequest(r), id); err != nil {
		writeServiceError(w, r, err, "error deleting comment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
