package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

func newTestOrder(t *testing.T) *entity.Order {
	t.Helper()
	order := entity.NewOrder(7).Value()
	require.True(t, order.AddDetail(entity.RestoreProductID(1), 3, 5.0).IsSuccess())
	require.True(t, order.AddDetail(entity.RestoreProductID(2), 1, 20.0).IsSuccess())
	return order
}

func TestOrderRepository_Create_ParentThenDetails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	order := newTestOrder(t)

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(7), order.CreatedAt()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectExec("INSERT INTO order_details").
		WithArgs(int64(42), int64(1), int64(3), 5.0, int64(42), int64(2), int64(1), 20.0).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewOrderRepository(db)

	id, err := repo.Create(context.Background(), order)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id.Int64())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByID_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "created_at"}).
			AddRow(int64(42), int64(7), createdAt))
	mock.ExpectQuery("SELECT (.+) FROM order_details").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
			AddRow(int64(1), int64(3), 5.0).
			AddRow(int64(2), int64(1), 20.0))

	repo := NewOrderRepository(db)

	order, err := repo.GetByID(context.Background(), entity.RestoreOrderID(42))

	assert.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(7), order.CustomerID())
	require.Len(t, order.Details(), 2)
	assert.Equal(t, 35.0, order.TotalAmount())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "created_at"}))

	repo := NewOrderRepository(db)

	order, err := repo.GetByID(context.Background(), entity.RestoreOrderID(99))

	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogRepository_InsertAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := entity.NewAuditLogRecord("ORDER_CREATED", "order 42 for customer 7").Value()

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("ORDER_CREATED", "order 42 for customer 7", rec.CreatedAt()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT (.+) FROM audit_log").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "details", "created_at"}).
			AddRow(int64(2), "ORDER_CREATED", "order 42 for customer 7", rec.CreatedAt()).
			AddRow(int64(1), "INVENTORY_CREATED", "product 1 created", rec.CreatedAt()))

	repo := NewAuditLogRepository(db)

	require.NoError(t, repo.Insert(context.Background(), rec))

	entries, err := repo.List(context.Background(), 10)
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ORDER_CREATED", entries[0].Action(), "most recent first")
	assert.NoError(t, mock.ExpectationsWereMet())
}
