package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/invest-portal/internal/utils"
	"github.com/MKhiriev/invest-portal/models"
)

// ─────────────────────────────────────────────
// Investment groups
// ─────────────────────────────────────────────

func (h *Handler) listInvestmentGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.InvestmentGroupService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "error listing investment groups")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(groups), http.StatusOK)
}

// getInvestmentGroup accepts a numeric id or a slug.
func (h *Handler) getInvestmentGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.services.InvestmentGroupService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "error getting investment group")
		return
	}

	_, _ = utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) createInvestmentGroup(w http.ResponseWriter, r *http.Request) {
	var group models.InvestmentGroup
	if err := decodeJSON(w, r, &group); err != nil {
		writeServiceError(w, r, err, "invalid investment group body")
		return
	}

	created, err := h.services.InvestmentGroupService.Create(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err, "error creating investment group")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateInvestmentGroup(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid investment group id")
		return
	}

	var group models.InvestmentGroup
	if err = decodeJSON(w, r, &group); err != nil {
		writeServiceError(w, r, err, "invalid investment group body")
		return
	}
	group.ID = id

	updated, err := h.services.InvestmentGroupService.Update(r.Context(), group)
	if err != nil {
		writeServiceError(w, r, err, "error updating investment group")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteInvestmentGroup(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid investment group id")
		return
	}

	if err = h.services.InvestmentGroupService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting investment group")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Investments
// ─────────────────────────────────────────────

// listInvestments lists investments newest first, optionally narrowed to one
// group with ?group=<slug>.
func (h *Handler) listInvestments(w http.ResponseWriter, r *http.Request) {
	filter := models.InvestmentFilter{GroupSlug: r.URL.Query().Get("group")}

	investments, err := h.services.InvestmentService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "error listing investments")
		return
	}

	_, _ = utils.WriteJSON(w, models.NewListResponse(investments), http.StatusOK)
}

func (h *Handler) getInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid investment id")
		return
	}

	investment, err := h.services.InvestmentService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "error getting investment")
		return
	}

	_, _ = utils.WriteJSON(w, investment, http.StatusOK)
}

func (h *Handler) createInvestment(w http.ResponseWriter, r *http.Request) {
	var investment models.Investment
	if err := decodeJSON(w, r, &investment); err != nil {
		writeServiceError(w, r, err, "invalid investment body")
		return
	}

	created, err := h.services.InvestmentService.Create(r.Context(), investment)
	if err != nil {
		writeServiceError(w, r, err, "error creating investment")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid investment id")
		return
	}

	var investment models.Investment
	if err = decodeJSON(w, r, &investment); err != nil {
		writeServiceError(w, r, err, "invalid investment body")
		return
	}
	investment.ID = id

	updated, err := h.services.InvestmentService.Update(r.Context(), investment)
	if err != nil {
		writeServiceError(w, r, err, "error updating investment")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid investment id")
		return
	}

	if err = h.services.InvestmentService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "error deleting investment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
