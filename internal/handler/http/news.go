package http

import (
	"net/http"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.NewsService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing news")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(articles), http.StatusOK)
}

func (h *Handler) getNewsArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid news id")
		return
	}

	article, err := h.services.NewsService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting news article")
		return
	}

	_, _ = utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) createNewsArticle(w http.ResponseWriter, r *http.Request) {
	var article models.NewsArticle
	if err := decodeJSON(w, r, &article); err != nil {
		writeServiceError(w, r, err, "invalid news body")
		return
	}

	created, err := h.services.NewsService.Create(r.Context(), article)
	if err != nil {
		writeServiceError(w, r, err, "error creating news article")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNewsArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid news id")
		return
	}

	var article models.NewsArticle
	if err = decodeJSON(w, r, &article); err != nil {
		writeServiceError(w, r, err, "invalid news body")
		return
	}
	article.ID = id

	updated, err := h.services.NewsService.Update(r.Context(), article)
	if err != nil {
		writeServiceError(w, r, err, "error updating news article")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNewsArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid news id")
		return
	}

	if err = h.services.NewsService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting news article")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
