package database

import (
	"time"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

// Flat row representations owned by this package. Domain entities are
// reconstructed from them via the entity Restore factories, so
// persistence concerns never leak into the domain.

type inventoryRecord struct {
	ProductID   int64
	ProductName string
	Stock       int64
	UnitPrice   float64
}

func (r inventoryRecord) toEntity() *entity.Inventory {
	return entity.RestoreInventory(r.ProductID, r.ProductName, r.Stock, r.UnitPrice)
}

type orderRecord struct {
	ID         int64
	CustomerID int64
	CreatedAt  time.Time
}

type orderDetailRecord struct {
	ProductID int64
	Quantity  int64
	UnitPrice float64
}

func (r orderRecord) toEntity(details []orderDetailRecord) *entity.Order {
	restored := make([]entity.OrderDetail, 0, len(details))
	for _, d := range details {
		restored = append(restored, entity.RestoreOrderDetail(d.ProductID, d.Quantity, d.UnitPrice))
	}
	return entity.RestoreOrder(r.ID, r.CustomerID, r.CreatedAt, restored)
}

type auditLogRecord struct {
	ID        int64
	Action    string
	Details   string
	CreatedAt time.Time
}

func (r auditLogRecord) toEntity() *entity.AuditLogRecord {
	return entity.RestoreAuditLogRecord(r.ID, r.Action, r.Details, r.CreatedAt)
}
