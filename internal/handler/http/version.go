package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/invest-portal/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// notFound answers unknown API paths with a JSON 404 and everything else
// with a plain one. Unsupported methods on known paths are answered the same
// way.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
		utils.WriteError(w, ErrEndpointNotFound.Error(), http.StatusNotFound)
		return
	}

	http.Error(w, "Not found", http.StatusNotFound)
}
