// Package txmanager runs functions inside database transactions. The active
// transaction travels in the context (see dbmetrics.WithTx) so repositories
// pick it up transparently via dbmetrics.GetExecutor.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
)

var (
	// ErrSerialization возвращается, когда PostgreSQL отклонил транзакцию из-за
	// конкурентного изменения (serialization_failure, deadlock, lock_not_available)
	ErrSerialization = errors.New("txmanager: concurrent update detected")

	// ErrTransaction возвращается при ошибках начала/фиксации транзакции
	ErrTransaction = errors.New("txmanager: transaction error")
)

// PostgreSQL коды ошибок конкурентного доступа
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE.
// Конфликт с параллельной транзакцией возвращается как ErrSerialization, без повторов.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции (REPEATABLE READ - один снимок на все чтения)
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов присоединяется к внешней транзакции
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return Classify(err)
	}

	if err := tx.Commit(); err != nil {
		if classified := Classify(err); errors.Is(classified, ErrSerialization) {
			return classified
		}
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}

// Classify оборачивает ошибки конкурентного доступа PostgreSQL в ErrSerialization.
// Остальные ошибки возвращаются без изменений.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrSerialization) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%w: %w", ErrSerialization, err)
		}
	}

	return err
}
