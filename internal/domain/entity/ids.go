package entity

import (
	"strconv"

	"github.com/DioGolang/StockFlow/pkg/result"
)

// ProductID and OrderID wrap positive integer identities so unrelated
// ids cannot be mixed up across the domain.

type ProductID struct {
	value int64
}

func NewProductID(v int64) result.Result[ProductID] {
	if v < 1 {
		return result.Err[ProductID](result.FieldError("product_id", "InvalidProductId", "product id must be positive"))
	}
	return result.Ok(ProductID{value: v})
}

func (id ProductID) Int64() int64   { return id.value }
func (id ProductID) IsZero() bool   { return id.value == 0 }
func (id ProductID) String() string { return strconv.FormatInt(id.value, 10) }

type OrderID struct {
	value int64
}

func NewOrderID(v int64) result.Result[OrderID] {
	if v < 1 {
		return result.Err[OrderID](result.FieldError("order_id", "InvalidOrderId", "order id must be positive"))
	}
	return result.Ok(OrderID{value: v})
}

func (id OrderID) Int64() int64   { return id.value }
func (id OrderID) IsZero() bool   { return id.value == 0 }
func (id OrderID) String() string { return strconv.FormatInt(id.value, 10) }

// RestoreProductID rebuilds an identity from a persisted row without
// validation. For use by the persistence boundary only.
func RestoreProductID(v int64) ProductID { return ProductID{value: v} }

// RestoreOrderID rebuilds an identity from a persisted row without
// validation. For use by the persistence boundary only.
func RestoreOrderID(v int64) OrderID { return OrderID{value: v} }
