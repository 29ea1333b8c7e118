package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DioGolang/StockFlow/internal/application/port/outbound"
	"github.com/DioGolang/StockFlow/internal/domain/entity"
	"github.com/DioGolang/StockFlow/pkg/result"
)

func TestUnitOfWork_CommitsOnSuccessResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	uow := NewUnitOfWork(db)

	res, err := outbound.Execute(context.Background(), uow, func(p outbound.RepositoryProvider) (result.Result[string], error) {
		rec := entity.NewAuditLogRecord("INVENTORY_CREATED", "product 1 created").Value()
		if err := p.AuditLog().Insert(context.Background(), rec); err != nil {
			return result.Result[string]{}, err
		}
		return result.Ok("done"), nil
	})

	assert.NoError(t, err)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "done", res.Value())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollsBackOnFailureResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow := NewUnitOfWork(db)

	res, err := outbound.Execute(context.Background(), uow, func(p outbound.RepositoryProvider) (result.Result[string], error) {
		return result.Err[string](result.BusinessRule("InsufficientStock", "available 3, requested 5")), nil
	})

	// a business failure rolls back but comes back as a Result, not an error
	assert.NoError(t, err)
	assert.True(t, res.IsFailure())
	assert.Equal(t, "InsufficientStock", res.Err().Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollsBackAndPropagatesInfrastructureError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow := NewUnitOfWork(db)
	driverErr := errors.New("connection reset")

	_, err = outbound.Execute(context.Background(), uow, func(p outbound.RepositoryProvider) (result.Result[string], error) {
		return result.Result[string]{}, driverErr
	})

	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow := NewUnitOfWork(db)

	assert.Panics(t, func() {
		_ = uow.Do(context.Background(), func(p outbound.RepositoryProvider) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_RejectsNestedTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow := NewUnitOfWork(db)

	err = uow.Do(context.Background(), func(p outbound.RepositoryProvider) error {
		return uow.Do(context.Background(), func(p outbound.RepositoryProvider) error {
			return nil
		})
	})

	assert.ErrorIs(t, err, ErrTransactionActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	beginErr := errors.New("too many connections")
	mock.ExpectBegin().WillReturnError(beginErr)

	uow := NewUnitOfWork(db)

	err = uow.Do(context.Background(), func(p outbound.RepositoryProvider) error { return nil })

	assert.ErrorIs(t, err, beginErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_ReusableAfterCompletion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	uow := NewUnitOfWork(db)

	for i := 0; i < 2; i++ {
		err := uow.Do(context.Background(), func(p outbound.RepositoryProvider) error { return nil })
		assert.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
