package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	h := &InventoryHandler{DB: db}

	mux.HandleFunc("GET /{$}", Index)
	mux.HandleFunc("GET /health", Health)

	mux.HandleFunc("GET /inventories", h.List)
	mux.HandleFunc("POST /inventories", h.Create)
	mux.HandleFunc("GET /inventories/{id}", h.Get)
	mux.HandleFunc("PUT /inventories/{id}", h.Update)
	mux.HandleFunc("DELETE /inventories/{id}", h.Delete)
	mux.HandleFunc("PUT /inventories/{id}/start_restock", h.StartRestock)
	mux.HandleFunc("PUT /inventories/{id}/stop_restock", h.StopRestock)

	return mux
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":  http.StatusOK,
		"message": "Healthy",
	})
}

// Index handles GET /, returning service metadata.
func Index(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"name":    "Inventory REST API Service",
		"version": "1.0",
		"url":     "/inventories",
	})
}
