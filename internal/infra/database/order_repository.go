package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

type OrderRepositoryImpl struct {
	session DBTX
}

func NewOrderRepository(session DBTX) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{session: session}
}

// Create inserts the parent row, then all detail rows stamped with the
// generated id in one multi-row statement. Both statements run on the
// same session, so when that session is a Unit-of-Work transaction the
// aggregate write is atomic.
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) (entity.OrderID, error) {
	var id int64
	err := r.session.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, created_at)
		VALUES ($1, $2)
		RETURNING id`,
		order.CustomerID(), order.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return entity.OrderID{}, fmt.Errorf("insert order: %w", err)
	}

	details := order.Details()
	if len(details) > 0 {
		var sb strings.Builder
		sb.WriteString("INSERT INTO order_details (order_id, product_id, quantity, unit_price) VALUES ")
		args := make([]any, 0, len(details)*4)
		for i, d := range details {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
			args = append(args, id, d.ProductID().Int64(), d.Quantity(), d.UnitPrice())
		}
		if _, err := r.session.ExecContext(ctx, sb.String(), args...); err != nil {
			return entity.OrderID{}, fmt.Errorf("insert order details: %w", err)
		}
	}

	return entity.RestoreOrderID(id), nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id entity.OrderID) (*entity.Order, error) {
	var rec orderRecord
	err := r.session.QueryRowContext(ctx, `
		SELECT id, customer_id, created_at
		FROM orders
		WHERE id = $1`, id.Int64(),
	).Scan(&rec.ID, &rec.CustomerID, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order %d: %w", id.Int64(), err)
	}

	rows, err := r.session.QueryContext(ctx, `
		SELECT product_id, quantity, unit_price
		FROM order_details
		WHERE order_id = $1
		ORDER BY id`, id.Int64())
	if err != nil {
		return nil, fmt.Errorf("query order details %d: %w", id.Int64(), err)
	}
	defer rows.Close()

	var details []orderDetailRecord
	for rows.Next() {
		var d orderDetailRecord
		if err := rows.Scan(&d.ProductID, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order details: %w", err)
	}

	return rec.toEntity(details), nil
}
