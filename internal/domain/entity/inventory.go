package entity

import (
	"fmt"
	"strings"

	"github.com/DioGolang/StockFlow/pkg/result"
)

// Inventory is the stock record for a single product. Stock never goes
// negative; every mutation is validated and applied only on success.
type Inventory struct {
	id        ProductID
	name      string
	stock     int64
	unitPrice float64
}

// NewInventory validates and builds a product that has not been
// persisted yet; the id is assigned by the repository on insert.
func NewInventory(name string, stock int64, unitPrice float64) result.Result[*Inventory] {
	fields := map[string][]string{}
	if strings.TrimSpace(name) == "" {
		fields["product_name"] = append(fields["product_name"], "product name must not be blank")
	}
	if stock < 0 {
		fields["stock"] = append(fields["stock"], "stock must not be negative")
	}
	if unitPrice <= 0 {
		fields["unit_price"] = append(fields["unit_price"], "unit price must be greater than zero")
	}
	if len(fields) > 0 {
		return result.Err[*Inventory](result.Validation(fields))
	}
	return result.Ok(&Inventory{name: name, stock: stock, unitPrice: unitPrice})
}

// RestoreInventory rebuilds an entity from already-validated persisted
// state. For use by the persistence boundary only.
func RestoreInventory(id int64, name string, stock int64, unitPrice float64) *Inventory {
	return &Inventory{
		id:        RestoreProductID(id),
		name:      name,
		stock:     stock,
		unitPrice: unitPrice,
	}
}

func (i *Inventory) ID() ProductID      { return i.id }
func (i *Inventory) Name() string       { return i.name }
func (i *Inventory) Stock() int64       { return i.stock }
func (i *Inventory) UnitPrice() float64 { return i.unitPrice }

// Decrease removes qty units of stock. The stock is untouched on any
// failure path, partial decrements do not exist.
func (i *Inventory) Decrease(qty int64) result.Result[result.Unit] {
	if qty < 1 {
		return result.Err[result.Unit](result.BusinessRule("InvalidQuantity", "quantity must be at least 1"))
	}
	if qty > i.stock {
		return result.Err[result.Unit](result.BusinessRule("InsufficientStock",
			fmt.Sprintf("insufficient stock for %q: available %d, requested %d", i.name, i.stock, qty)))
	}
	i.stock -= qty
	return result.Empty()
}

// Increase adds qty units of stock.
func (i *Inventory) Increase(qty int64) result.Result[result.Unit] {
	if qty < 1 {
		return result.Err[result.Unit](result.BusinessRule("InvalidQuantity", "quantity must be at least 1"))
	}
	i.stock += qty
	return result.Empty()
}

// Update replaces name, stock and price, re-running creation
// validation.
func (i *Inventory) Update(name string, stock int64, unitPrice float64) result.Result[result.Unit] {
	validated := NewInventory(name, stock, unitPrice)
	if validated.IsFailure() {
		return result.ErrOf[result.Unit](validated)
	}
	i.name = name
	i.stock = stock
	i.unitPrice = unitPrice
	return result.Empty()
}
