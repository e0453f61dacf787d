package model

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartData(t *testing.T) {
	cart := NewCartData()

	assert.Len(t, cart, CartSlots)
	for i := 0; i < CartSlots; i++ {
		qty, ok := cart[strconv.Itoa(i)]
		assert.True(t, ok)
		assert.Equal(t, 0, qty)
	}
}

func TestCartData_ScanValue(t *testing.T) {
	cart := CartData{"0": 3, "299": 1}

	value, err := cart.Value()
	assert.NoError(t, err)

	var restored CartData
	assert.NoError(t, restored.Scan(value))
	assert.Equal(t, cart, restored)

	// MySQL hands JSON columns back as strings in some driver modes.
	var fromString CartData
	assert.NoError(t, fromString.Scan(`{"0":3,"299":1}`))
	assert.Equal(t, cart, fromString)
}

func TestCartData_ScanNil(t *testing.T) {
	cart := CartData{"0": 1}
	assert.NoError(t, cart.Scan(nil))
	assert.Nil(t, cart)
}
