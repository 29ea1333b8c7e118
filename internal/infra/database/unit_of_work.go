package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
)

// ErrTransactionActive signals a nested Do on one Unit-of-Work
// instance. This is a programmer error, not a business failure.
var ErrTransactionActive = errors.New("unit of work: transaction already active")

type RepositoryProviderImpl struct {
	session DBTX
}

func NewRepositoryProvider(session DBTX) *RepositoryProviderImpl {
	return &RepositoryProviderImpl{session: session}
}

func (p *RepositoryProviderImpl) Inventory() outbound.InventoryRepository {
	return NewInventoryRepository(p.session)
}

func (p *RepositoryProviderImpl) Order() outbound.OrderRepository {
	return NewOrderRepository(p.session)
}

func (p *RepositoryProviderImpl) AuditLog() outbound.AuditLogRepository {
	return NewAuditLogRepository(p.session)
}

type UnitOfWorkImpl struct {
	db     *sql.DB
	active atomic.Bool
}

func NewUnitOfWork(db *sql.DB) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{db: db}
}

// Do runs fn inside one transaction. Commit happens only when fn
// returns nil; any error, panic or cancellation rolls back before the
// failure propagates, so a transaction is never left open.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(p outbound.RepositoryProvider) error) error {
	if !u.active.CompareAndSwap(false, true) {
		return ErrTransactionActive
	}
	defer u.active.Store(false)

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// covers panics and early returns; a second rollback after commit
	// or an explicit rollback is a no-op
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(NewRepositoryProvider(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback failed: %v: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
