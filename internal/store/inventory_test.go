package store

import (
	"context"
	"errors"
	"testing"

	"inventoryd/internal/db"
	"inventoryd/internal/model"
)

func strptr(s string) *string { return &s }

func newInventory(name string, quantity, level int, condition model.Condition, available bool) *model.Inventory {
	return &model.Inventory{
		Name:                strptr(name),
		Quantity:            quantity,
		RestockLevel:        level,
		Condition:           condition,
		RestockingAvailable: available,
	}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first := newInventory("Widget", 10, 2, model.ConditionNew, true)
	second := newInventory("Widget", 10, 2, model.ConditionNew, true)

	if err := CreateInventory(ctx, database, first); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}
	if err := CreateInventory(ctx, database, second); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Errorf("expected non-zero ids, got %d and %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both %d", first.ID)
	}
}

func TestCreateWithNullName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	inv := &model.Inventory{Quantity: 1, RestockLevel: 1, Condition: model.ConditionUsed, RestockingAvailable: true}
	if err := CreateInventory(ctx, database, inv); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	got, err := GetInventory(ctx, database, inv.ID)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if got.Name != nil {
		t.Errorf("expected nil name, got %q", *got.Name)
	}
}

func TestGetAbsentReturnsNil(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetInventory(context.Background(), database, 999999)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent id, got %+v", got)
	}
}

func TestDeleteThenGet(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	inv := newInventory("Widget", 10, 2, model.ConditionNew, true)
	if err := CreateInventory(ctx, database, inv); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	if err := DeleteInventory(ctx, database, inv.ID); err != nil {
		t.Fatalf("DeleteInventory: %v", err)
	}

	got, err := GetInventory(ctx, database, inv.ID)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}

	// Deleting again is a no-op, not an error.
	if err := DeleteInventory(ctx, database, inv.ID); err != nil {
		t.Errorf("DeleteInventory on absent id: %v", err)
	}
}

func TestUpdateWithEmptyID(t *testing.T) {
	inv := newInventory("Widget", 10, 2, model.ConditionNew, true)

	// A nil handle proves storage is never contacted.
	err := UpdateInventory(context.Background(), nil, inv)
	if err == nil {
		t.Fatal("expected error for update without id")
	}

	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Reason != "update called with empty id" {
		t.Errorf("unexpected reason %q", ve.Reason)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	inv := newInventory("Widget", 10, 2, model.ConditionNew, true)
	if err := CreateInventory(ctx, database, inv); err != nil {
		t.Fatalf("CreateInventory: %v", err)
	}

	inv.Name = strptr("Gadget")
	inv.Quantity = 3
	inv.RestockLevel = 1
	inv.Condition = model.ConditionUsed
	inv.RestockingAvailable = false
	if err := UpdateInventory(ctx, database, inv); err != nil {
		t.Fatalf("UpdateInventory: %v", err)
	}

	got, err := GetInventory(ctx, database, inv.ID)
	if err != nil {
		t.Fatalf("GetInventory: %v", err)
	}
	if got == nil || *got.Name != "Gadget" || got.Quantity != 3 || got.RestockLevel != 1 ||
		got.Condition != model.ConditionUsed || got.RestockingAvailable {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestListInventories(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := CreateInventory(ctx, database, newInventory("Widget", i, 1, model.ConditionNew, true)); err != nil {
			t.Fatalf("CreateInventory: %v", err)
		}
	}

	items, err := ListInventories(ctx, database)
	if err != nil {
		t.Fatalf("ListInventories: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 items, got %d", len(items))
	}
}

func TestFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateInventory(ctx, database, newInventory("Widget", 10, 2, model.ConditionNew, true))
	CreateInventory(ctx, database, newInventory("Gadget", 5, 2, model.ConditionUsed, false))
	CreateInventory(ctx, database, newInventory("Widget", 5, 7, model.ConditionOpenBox, true))

	byName, err := FindByName(ctx, database, "Widget")
	if err != nil || len(byName) != 2 {
		t.Errorf("FindByName: expected 2, got %d (%v)", len(byName), err)
	}

	byQuantity, err := FindByQuantity(ctx, database, 5)
	if err != nil || len(byQuantity) != 2 {
		t.Errorf("FindByQuantity: expected 2, got %d (%v)", len(byQuantity), err)
	}

	byLevel, err := FindByRestockLevel(ctx, database, 7)
	if err != nil || len(byLevel) != 1 {
		t.Errorf("FindByRestockLevel: expected 1, got %d (%v)", len(byLevel), err)
	}

	byCondition, err := FindByCondition(ctx, database, model.ConditionUsed)
	if err != nil || len(byCondition) != 1 {
		t.Errorf("FindByCondition: expected 1, got %d (%v)", len(byCondition), err)
	}

	available, err := FindByRestockingAvailable(ctx, database, true)
	if err != nil || len(available) != 2 {
		t.Errorf("FindByRestockingAvailable: expected 2, got %d (%v)", len(available), err)
	}
}

func TestFindByConditionInvalid(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := FindByCondition(context.Background(), database, model.Condition("BROKEN"))
	if err == nil {
		t.Fatal("expected error for invalid condition")
	}

	// This is a type-level misuse, not a payload validation failure.
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		t.Errorf("expected plain error, got ValidationError %v", ve)
	}
}
