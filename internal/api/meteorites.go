package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"shahabsang/internal/model"
	"shahabsang/internal/store"
)

// msgNotFound is the user-facing message for a missing meteorite.
const msgNotFound = "شهاب‌سنگ پیدا نشد"

// MeteoritesHandler handles catalog listing and detail endpoints.
type MeteoritesHandler struct {
	DB  *sql.DB
	Log *zap.Logger
}

// List handles GET /api/meteorites.
//
// All query parameters are optional; absent or empty values simply mean no
// filter on that field. Numeric filter values are passed through to the
// store unvalidated.
func (h *MeteoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.Filter{
		Search:   q.Get("search"),
		Type:     q.Get("type"),
		Location: q.Get("location"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
	}

	h.Log.Debug("listing meteorites",
		zap.String("search", filter.Search),
		zap.String("type", filter.Type),
		zap.String("location", filter.Location),
	)

	meteorites, err := store.ListMeteorites(r.Context(), h.DB, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meteorites == nil {
		meteorites = []model.Meteorite{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"meteorites": meteorites,
	})
}

// Get handles GET /api/meteorites/{id}.
func (h *MeteoritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		// A non-numeric id cannot match any row.
		jsonError(w, http.StatusNotFound, msgNotFound)
		return
	}

	meteorite, err := store.GetMeteorite(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meteorite == nil {
		jsonError(w, http.StatusNotFound, msgNotFound)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":   true,
		"meteorite": meteorite,
	})
}
