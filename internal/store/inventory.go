package store

import (
	"context"
	"database/sql"
	"fmt"

	"inventoryd/internal/model"
)

const inventoryColumns = `id, name, quantity, restock_level, condition, restocking_available`

// CreateInventory persists a new inventory record and assigns its id.
// A failed write leaves no partial state and is reported as a
// validation error carrying the storage cause.
func CreateInventory(ctx context.Context, db *sql.DB, inv *model.Inventory) error {
	result, err := db.ExecContext(ctx,
		`INSERT INTO inventories (name, quantity, restock_level, condition, restocking_available)
		 VALUES (?, ?, ?, ?, ?)`,
		inv.Name, inv.Quantity, inv.RestockLevel, string(inv.Condition), inv.RestockingAvailable,
	)
	if err != nil {
		return &model.ValidationError{Reason: "creating inventory", Cause: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return &model.ValidationError{Reason: "getting inventory id", Cause: err}
	}

	inv.ID = id
	return nil
}

// UpdateInventory replaces all fields of the persisted record with
// inv's current values, keyed by inv.ID. The id must already be set;
// it is never reassigned.
func UpdateInventory(ctx context.Context, db *sql.DB, inv *model.Inventory) error {
	if inv.ID == 0 {
		return &model.ValidationError{Reason: "update called with empty id"}
	}

	_, err := db.ExecContext(ctx,
		`UPDATE inventories
		 SET name = ?, quantity = ?, restock_level = ?, condition = ?, restocking_available = ?
		 WHERE id = ?`,
		inv.Name, inv.Quantity, inv.RestockLevel, string(inv.Condition), inv.RestockingAvailable, inv.ID,
	)
	if err != nil {
		return &model.ValidationError{Reason: "updating inventory", Cause: err}
	}
	return nil
}

// DeleteInventory removes the record with the given id. Deleting an
// absent id is a no-op.
func DeleteInventory(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM inventories WHERE id = ?`, id)
	if err != nil {
		return &model.ValidationError{Reason: "deleting inventory", Cause: err}
	}
	return nil
}

// GetInventory returns an inventory record by id, or nil if none exists.
func GetInventory(ctx context.Context, db *sql.DB, id int64) (*model.Inventory, error) {
	inv := &model.Inventory{}
	err := db.QueryRowContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventories WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.Name, &inv.Quantity, &inv.RestockLevel, &inv.Condition, &inv.RestockingAvailable)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}
	return inv, nil
}

// ListInventories returns every inventory record in storage order.
func ListInventories(ctx context.Context, db *sql.DB) ([]model.Inventory, error) {
	return queryInventories(ctx, db, `SELECT `+inventoryColumns+` FROM inventories`)
}

// FindByName returns all records whose name matches exactly.
func FindByName(ctx context.Context, db *sql.DB, name string) ([]model.Inventory, error) {
	return queryInventories(ctx, db,
		`SELECT `+inventoryColumns+` FROM inventories WHERE name = ?`, name)
}

// FindByQuantity returns all records at the given quantity.
func FindByQuantity(ctx context.Context, db *sql.DB, quantity int) ([]model.Inventory, error) {
	return queryInventories(ctx, db,
		`SELECT `+inventoryColumns+` FROM inventories WHERE quantity = ?`, quantity)
}

// FindByRestockLevel returns all records at the given restock level.
func FindByRestockLevel(ctx context.Context, db *sql.DB, level int) ([]model.Inventory, error) {
	return queryInventories(ctx, db,
		`SELECT `+inventoryColumns+` FROM inventories WHERE restock_level = ?`, level)
}

// FindByCondition returns all records in the given condition. The
// condition must be a valid enum value.
func FindByCondition(ctx context.Context, db *sql.DB, condition model.Condition) ([]model.Inventory, error) {
	if !condition.Valid() {
		return nil, fmt.Errorf("invalid condition %q, must be one of NEW, OPEN_BOX, USED", condition)
	}
	return queryInventories(ctx, db,
		`SELECT `+inventoryColumns+` FROM inventories WHERE condition = ?`, string(condition))
}

// FindByRestockingAvailable returns all records with the given
// restocking availability.
func FindByRestockingAvailable(ctx context.Context, db *sql.DB, available bool) ([]model.Inventory, error) {
	return queryInventories(ctx, db,
		`SELECT `+inventoryColumns+` FROM inventories WHERE restocking_available = ?`, available)
}

// queryInventories runs a SELECT over full inventory rows.
func queryInventories(ctx context.Context, db *sql.DB, query string, args ...any) ([]model.Inventory, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying inventories: %w", err)
	}
	defer rows.Close()

	var items []model.Inventory
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Quantity, &inv.RestockLevel, &inv.Condition, &inv.RestockingAvailable); err != nil {
			return nil, fmt.Errorf("scanning inventory: %w", err)
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}
