package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInventory(t *testing.T) {
	//Arrange
	name := "Widget"
	stock := int64(10)
	price := 5.0

	//Act
	res := NewInventory(name, stock, price)

	//Assert
	assert.True(t, res.IsSuccess())
	inv := res.Value()
	assert.Equal(t, "Widget", inv.Name())
	assert.Equal(t, int64(10), inv.Stock())
	assert.Equal(t, 5.0, inv.UnitPrice())
	assert.True(t, inv.ID().IsZero())
}

func TestNewInventory_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		productName   string
		stock         int64
		price         float64
		expectedField string
	}{
		{"Should fail when name is blank", "   ", 10, 5.0, "product_name"},
		{"Should fail when stock is negative", "Widget", -1, 5.0, "stock"},
		{"Should fail when price is zero", "Widget", 10, 0.0, "unit_price"},
		{"Should fail when price is negative", "Widget", 10, -2.5, "unit_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewInventory(tt.productName, tt.stock, tt.price)

			assert.True(t, res.IsFailure())
			e := res.Err()
			assert.Contains(t, e.Fields, tt.expectedField)
		})
	}
}

func TestNewInventory_ReportsEveryViolatedField(t *testing.T) {
	res := NewInventory("", -1, 0)

	assert.True(t, res.IsFailure())
	assert.Len(t, res.Err().Fields, 3)
}

func TestInventory_Decrease(t *testing.T) {
	inv := RestoreInventory(1, "Widget", 10, 5.0)

	res := inv.Decrease(3)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, int64(7), inv.Stock())
}

func TestInventory_Decrease_Failures(t *testing.T) {
	tests := []struct {
		name         string
		qty          int64
		expectedCode string
	}{
		{"Should fail when quantity is zero", 0, "InvalidQuantity"},
		{"Should fail when quantity is negative", -4, "InvalidQuantity"},
		{"Should fail when quantity exceeds stock", 11, "InsufficientStock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := RestoreInventory(1, "Widget", 10, 5.0)

			res := inv.Decrease(tt.qty)

			assert.True(t, res.IsFailure())
			assert.Equal(t, tt.expectedCode, res.Err().Code)
			assert.Equal(t, int64(10), inv.Stock(), "stock must be unchanged on failure")
		})
	}
}

func TestInventory_Increase(t *testing.T) {
	inv := RestoreInventory(1, "Widget", 10, 5.0)

	assert.True(t, inv.Increase(5).IsSuccess())
	assert.Equal(t, int64(15), inv.Stock())

	res := inv.Increase(0)
	assert.True(t, res.IsFailure())
	assert.Equal(t, "InvalidQuantity", res.Err().Code)
	assert.Equal(t, int64(15), inv.Stock())
}

func TestInventory_Update(t *testing.T) {
	inv := RestoreInventory(1, "Widget", 10, 5.0)

	res := inv.Update("Gadget", 20, 7.5)

	assert.True(t, res.IsSuccess())
	assert.Equal(t, "Gadget", inv.Name())
	assert.Equal(t, int64(20), inv.Stock())
	assert.Equal(t, 7.5, inv.UnitPrice())
}

func TestInventory_Update_InvalidLeavesStateUnchanged(t *testing.T) {
	inv := RestoreInventory(1, "Widget", 10, 5.0)

	res := inv.Update("", -1, 0)

	assert.True(t, res.IsFailure())
	assert.Equal(t, "Widget", inv.Name())
	assert.Equal(t, int64(10), inv.Stock())
	assert.Equal(t, 5.0, inv.UnitPrice())
}
