package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BNB-RentalService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr error
	commits   int
	rollbacks int
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rollbacks++
	return nil
}

type fakeTxBeginner struct {
	tx    *fakeTx
	begun int
}

func (f *fakeTxBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begun++
	return f.tx, nil
}

// Ошибка драйвера, обёрнутая так, как это делают репозитории и usecase:
// сентинелы через %w, исходная ошибка сохраняется в цепочке
func wrappedSerializationFailure() error {
	pqErr := &pq.Error{Code: "40001"}
	repoErr := fmt.Errorf("%w: GetByID - execute query: %w",
		errors.New("storage_slots: failed to execute query"), pqErr)
	return fmt.Errorf("%w: failed to get slot: %w",
		errors.New("book_slot: internal error"), repoErr)
}

func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrappedSerializationFailure()
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, db.tx.rollbacks)
}

func TestDoSerializable_RetriesDeadlock(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("%w: MarkBooked - execute update: %w",
			errors.New("storage_slots: failed to execute query"), &pq.Error{Code: "40P01"})
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return wrappedSerializationFailure()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, db.tx.commits)
}

func TestDoSerializable_NonRetryableFailsImmediately(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	boom := errors.New("constraint violated")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_CommitSerializationFailure(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{commitErr: &pq.Error{Code: "40001"}}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.Equal(t, 3, attempts)
}

func TestDo_RollsBackOnError(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	boom := errors.New("insert failed")
	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Equal(t, 0, db.tx.commits)
}
