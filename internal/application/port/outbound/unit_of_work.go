package outbound

import (
	"context"
	"errors"

	"github.com/DioGolang/StockFlow/pkg/result"
)

// RepositoryProvider hands out repositories hydrated with the active
// transaction.
type RepositoryProvider interface {
	Inventory() InventoryRepository
	Order() OrderRepository
	AuditLog() AuditLogRepository
}

// UnitOfWork owns one transactional scope. Do begins a transaction,
// runs fn against a transaction-bound provider, commits when fn
// returns nil and rolls back otherwise, including panics and
// cancellation. Only one transaction may be active per instance;
// nested Do calls are not supported.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(p RepositoryProvider) error) error
}

// errBusinessFailure marks a rollback forced by a failure Result, as
// opposed to an infrastructure error. It never escapes Execute.
var errBusinessFailure = errors.New("business failure, transaction rolled back")

// Execute runs fn inside one transaction and maps its Result onto the
// commit decision: a success Result commits and is returned as-is, a
// failure Result rolls back and is still returned as a plain Result
// with a nil error, and an infrastructure error from the driver or fn
// rolls back and propagates as an error.
func Execute[T any](ctx context.Context, uow UnitOfWork, fn func(p RepositoryProvider) (result.Result[T], error)) (result.Result[T], error) {
	var out result.Result[T]

	err := uow.Do(ctx, func(p RepositoryProvider) error {
		var fnErr error
		out, fnErr = fn(p)
		if fnErr != nil {
			return fnErr
		}
		if out.IsFailure() {
			return errBusinessFailure
		}
		return nil
	})
	if err != nil && !errors.Is(err, errBusinessFailure) {
		var zero result.Result[T]
		return zero, err
	}
	return out, nil
}
