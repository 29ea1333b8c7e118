package entity

import (
	"time"

	"github.com/DioGolang/StockFlow/pkg/result"
)

// OrderDetail is a line item owned exclusively by its Order. The unit
// price is a snapshot taken at order time and is independent of later
// inventory price changes.
type OrderDetail struct {
	productID ProductID
	quantity  int64
	unitPrice float64
}

func (d OrderDetail) ProductID() ProductID { return d.productID }
func (d OrderDetail) Quantity() int64      { return d.quantity }
func (d OrderDetail) UnitPrice() float64   { return d.unitPrice }

// SubTotal is always derived, never stored.
func (d OrderDetail) SubTotal() float64 {
	return d.unitPrice * float64(d.quantity)
}

// Order is the aggregate root for a customer order and its details.
type Order struct {
	id         OrderID
	customerID int64
	createdAt  time.Time
	details    []OrderDetail
}

// NewOrder builds an order that has not been persisted yet; the id is
// assigned by the repository after insert.
func NewOrder(customerID int64) result.Result[*Order] {
	if customerID <= 0 {
		return result.Err[*Order](result.FieldError("customer_id", "InvalidCustomerId", "customer id must be positive"))
	}
	return result.Ok(&Order{
		customerID: customerID,
		createdAt:  time.Now().UTC(),
	})
}

// RestoreOrder rebuilds an aggregate from already-validated persisted
// state. For use by the persistence boundary only.
func RestoreOrder(id, customerID int64, createdAt time.Time, details []OrderDetail) *Order {
	return &Order{
		id:         RestoreOrderID(id),
		customerID: customerID,
		createdAt:  createdAt,
		details:    details,
	}
}

// RestoreOrderDetail rebuilds a line item from a persisted row. For
// use by the persistence boundary only.
func RestoreOrderDetail(productID, quantity int64, unitPrice float64) OrderDetail {
	return OrderDetail{
		productID: RestoreProductID(productID),
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

func (o *Order) ID() OrderID          { return o.id }
func (o *Order) CustomerID() int64    { return o.customerID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Details returns a copy; the list is owned by the order and details
// are immutable once added.
func (o *Order) Details() []OrderDetail {
	out := make([]OrderDetail, len(o.details))
	copy(out, o.details)
	return out
}

// AddDetail validates and appends a line item.
func (o *Order) AddDetail(productID ProductID, quantity int64, unitPrice float64) result.Result[result.Unit] {
	if quantity < 1 {
		return result.Err[result.Unit](result.BusinessRule("InvalidQuantity", "quantity must be at least 1"))
	}
	if unitPrice <= 0 {
		return result.Err[result.Unit](result.BusinessRule("InvalidUnitPrice", "unit price must be greater than zero"))
	}
	o.details = append(o.details, OrderDetail{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	})
	return result.Empty()
}

// TotalAmount is the sum of detail subtotals, derived on demand.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, d := range o.details {
		total += d.SubTotal()
	}
	return total
}
