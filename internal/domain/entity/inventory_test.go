package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventory_CanApplyYExceeds(t *testing.T) {
	inv := &Inventory{Quantity: 5}

	assert.True(t, inv.CanApply(-5))
	assert.False(t, inv.CanApply(-6))
	assert.False(t, inv.CanApply(math.MinInt))
	assert.True(t, inv.CanApply(math.MaxInt))

	assert.False(t, inv.Exceeds(MaxQuantity-5))
	assert.True(t, inv.Exceeds(MaxQuantity-4))
	assert.True(t, inv.Exceeds(math.MaxInt))
	assert.False(t, inv.Exceeds(math.MinInt))
}

func TestValidQuantity(t *testing.T) {
	assert.True(t, ValidQuantity(0))
	assert.True(t, ValidQuantity(MaxQuantity))
	assert.False(t, ValidQuantity(-1))
	assert.False(t, ValidQuantity(MaxQuantity+1))
}
