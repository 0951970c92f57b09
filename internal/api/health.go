package api

import (
	"database/sql"
	"net/http"
)

// HealthHandler reports service and store health.
type HealthHandler struct {
	DB *sql.DB
}

// Check handles GET /api/health. A failing store ping reports the service as
// degraded with a 500, matching how every other endpoint would fail.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}
