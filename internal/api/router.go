package api

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	meteoritesHandler := &MeteoritesHandler{DB: db, Log: logger}
	ordersHandler := &OrdersHandler{DB: db, Log: logger}
	contactHandler := &ContactHandler{Log: logger}
	healthHandler := &HealthHandler{DB: db}

	mux.HandleFunc("GET /api/meteorites", meteoritesHandler.List)
	mux.HandleFunc("GET /api/meteorites/{id}", meteoritesHandler.Get)
	mux.HandleFunc("POST /api/orders", ordersHandler.Create)
	mux.HandleFunc("POST /api/contact", contactHandler.Create)
	mux.HandleFunc("GET /api/health", healthHandler.Check)

	return mux
}
