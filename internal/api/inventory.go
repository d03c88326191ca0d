package api

import (
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"inventoryd/internal/model"
	"inventoryd/internal/store"
)

// InventoryHandler handles inventory CRUD and restocking endpoints.
type InventoryHandler struct {
	DB *sql.DB
}

// List handles GET /inventories. When several filter parameters are
// present, exactly one applies, chosen in the order name, quantity,
// restock_level, condition, restocking_available.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		items []model.Inventory
		err   error
	)
	switch {
	case q.Get("name") != "":
		items, err = store.FindByName(ctx, h.DB, q.Get("name"))
	case q.Get("quantity") != "":
		quantity, convErr := strconv.Atoi(q.Get("quantity"))
		if convErr != nil {
			jsonError(w, http.StatusBadRequest, "quantity must be an integer")
			return
		}
		items, err = store.FindByQuantity(ctx, h.DB, quantity)
	case q.Get("restock_level") != "":
		level, convErr := strconv.Atoi(q.Get("restock_level"))
		if convErr != nil {
			jsonError(w, http.StatusBadRequest, "restock_level must be an integer")
			return
		}
		items, err = store.FindByRestockLevel(ctx, h.DB, level)
	case q.Get("condition") != "":
		condition, parseErr := model.ParseCondition(q.Get("condition"))
		if parseErr != nil {
			jsonError(w, http.StatusBadRequest, validationReason(parseErr))
			return
		}
		items, err = store.FindByCondition(ctx, h.DB, condition)
	case q.Get("restocking_available") != "":
		items, err = store.FindByRestockingAvailable(ctx, h.DB, parseFlag(q.Get("restocking_available")))
	default:
		items, err = store.ListInventories(ctx, h.DB)
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list inventories")
		return
	}

	if items == nil {
		items = []model.Inventory{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /inventories.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "body of request contained bad or no data")
		return
	}

	var inv model.Inventory
	if err := inv.Deserialize(data); err != nil {
		jsonError(w, http.StatusBadRequest, validationReason(err))
		return
	}

	if err := store.CreateInventory(r.Context(), h.DB, &inv); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/inventories/%d", inv.ID))
	jsonResponse(w, http.StatusCreated, inv)
}

// Get handles GET /inventories/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	inv, err := store.GetInventory(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get inventory")
		return
	}
	if inv == nil {
		jsonError(w, http.StatusNotFound, notFoundMessage(id))
		return
	}
	jsonResponse(w, http.StatusOK, inv)
}

// Update handles PUT /inventories/{id}. The body replaces every field;
// the id always comes from the path, never the payload.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	if !requireJSON(w, r) {
		return
	}

	inv, err := store.GetInventory(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get inventory")
		return
	}
	if inv == nil {
		jsonError(w, http.StatusNotFound, notFoundMessage(id))
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "body of request contained bad or no data")
		return
	}
	if err := inv.Deserialize(data); err != nil {
		jsonError(w, http.StatusBadRequest, validationReason(err))
		return
	}

	inv.ID = id
	if err := store.UpdateInventory(r.Context(), h.DB, inv); err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, inv)
}

// Delete handles DELETE /inventories/{id}. Deleting an absent id is
// still a success.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	if err := store.DeleteInventory(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete inventory")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartRestock handles PUT /inventories/{id}/start_restock. Only an
// available item may enter a restock cycle; starting twice conflicts.
func (h *InventoryHandler) StartRestock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	inv, err := store.GetInventory(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get inventory")
		return
	}
	if inv == nil {
		jsonError(w, http.StatusNotFound, notFoundMessage(id))
		return
	}
	if !inv.RestockingAvailable {
		jsonError(w, http.StatusConflict,
			fmt.Sprintf("Inventory with id '%d' is not available for restocking.", id))
		return
	}

	inv.RestockingAvailable = false
	if err := store.UpdateInventory(r.Context(), h.DB, inv); err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, inv)
}

// StopRestock handles PUT /inventories/{id}/stop_restock, the mirror
// transition: only an item currently restocking may become available.
func (h *InventoryHandler) StopRestock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	inv, err := store.GetInventory(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get inventory")
		return
	}
	if inv == nil {
		jsonError(w, http.StatusNotFound, notFoundMessage(id))
		return
	}
	if inv.RestockingAvailable {
		jsonError(w, http.StatusConflict,
			fmt.Sprintf("Inventory with id '%d' is already available.", id))
		return
	}

	inv.RestockingAvailable = true
	if err := store.UpdateInventory(r.Context(), h.DB, inv); err != nil {
		writeStoreError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, inv)
}

// requireJSON enforces an application/json request body, answering 415
// otherwise.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		jsonError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	return true
}

// parseFlag interprets a restocking_available query value: true, yes,
// and 1 mean true, anything else false.
func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// notFoundMessage is the standard missing-record message.
func notFoundMessage(id int64) string {
	return fmt.Sprintf("Inventory with id '%d' was not found.", id)
}

// validationReason extracts the human-readable part of a validation
// error, without any wrapped storage detail.
func validationReason(err error) string {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

// writeStoreError maps repository failures onto HTTP status codes.
// Rejected writes surface as validation errors; anything else is an
// internal error.
func writeStoreError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		jsonError(w, http.StatusBadRequest, ve.Reason)
		return
	}
	jsonError(w, http.StatusInternalServerError, "unexpected server error")
}
