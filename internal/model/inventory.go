package model

import (
	"fmt"
	"math"
	"strings"
)

// Condition enumerates the physical condition of an inventory item.
type Condition string

// Conditions.
const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPEN_BOX"
	ConditionUsed    Condition = "USED"
)

// Valid reports whether c is one of the enumerated conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionOpenBox, ConditionUsed:
		return true
	}
	return false
}

// ParseCondition looks up a condition by its symbolic name, ignoring case.
func ParseCondition(name string) (Condition, error) {
	c := Condition(strings.ToUpper(name))
	if !c.Valid() {
		return "", &ValidationError{Reason: fmt.Sprintf("unknown condition %q", name)}
	}
	return c, nil
}

// MaxNameLength is the longest allowed item name.
const MaxNameLength = 63

// Inventory represents a stocked item and its restocking state.
// ID is zero until the record is persisted; the store assigns it once
// and updates never reassign it. RestockingAvailable is false while the
// item is in a restock cycle.
type Inventory struct {
	ID                  int64     `json:"id"`
	Name                *string   `json:"name"`
	Quantity            int       `json:"quantity"`
	RestockLevel        int       `json:"restock_level"`
	Condition           Condition `json:"condition"`
	RestockingAvailable bool      `json:"restocking_available"`
}

// Deserialize populates inv from an untyped JSON mapping. All keys except
// id are required; name may be null. Unknown extra keys are ignored and
// the id is never taken from the payload.
func (inv *Inventory) Deserialize(data map[string]any) error {
	if data == nil {
		return &ValidationError{Reason: "body of request contained bad or no data"}
	}

	v, ok := data["name"]
	if !ok {
		return &ValidationError{Reason: "missing name"}
	}
	switch name := v.(type) {
	case nil:
		inv.Name = nil
	case string:
		if len(name) > MaxNameLength {
			return &ValidationError{Reason: fmt.Sprintf("name longer than %d characters", MaxNameLength)}
		}
		inv.Name = &name
	default:
		return &ValidationError{Reason: "invalid attribute name"}
	}

	quantity, err := intField(data, "quantity")
	if err != nil {
		return err
	}
	inv.Quantity = quantity

	restockLevel, err := intField(data, "restock_level")
	if err != nil {
		return err
	}
	inv.RestockLevel = restockLevel

	v, ok = data["condition"]
	if !ok {
		return &ValidationError{Reason: "missing condition"}
	}
	s, ok := v.(string)
	if !ok {
		return &ValidationError{Reason: "invalid attribute condition"}
	}
	condition, err := ParseCondition(s)
	if err != nil {
		return err
	}
	inv.Condition = condition

	v, ok = data["restocking_available"]
	if !ok {
		return &ValidationError{Reason: "missing restocking_available"}
	}
	flag, ok := v.(bool)
	if !ok {
		return &ValidationError{Reason: "invalid attribute restocking_available"}
	}
	inv.RestockingAvailable = flag

	return nil
}

// intField reads a required integer value from a decoded JSON mapping.
func intField(data map[string]any, key string) (int, error) {
	v, ok := data[key]
	if !ok {
		return 0, &ValidationError{Reason: "missing " + key}
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, &ValidationError{Reason: "invalid attribute " + key}
	}
	return int(f), nil
}
