package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// CartSlots is the fixed number of item slots in every cart.
const CartSlots = 300

// CartData maps an item slot index ("0".."299") to a non-negative quantity.
// It is stored as a single JSON column on the user row.
type CartData map[string]int

// NewCartData returns a cart with every slot present and zeroed.
func NewCartData() CartData {
	cart := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

// Value implements driver.Valuer so GORM can persist the cart as JSON.
func (c CartData) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for reading the JSON column back.
func (c *CartData) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported cart column type %T", value)
	}
	return json.Unmarshal(raw, c)
}
