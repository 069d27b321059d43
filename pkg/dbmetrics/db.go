package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/BNB-RentalService/pkg/metrics"
)

const poolStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, записывающая длительность запросов в prometheus
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Tx обёртка над *sql.Tx с теми же метриками
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
	name    string
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики пула соединений до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, name: name}

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConns.WithLabelValues(name).Set(float64(stats.OpenConnections))
				m.DBIdleConns.WithLabelValues(name).Set(float64(stats.Idle))
				m.DBInUseConns.WithLabelValues(name).Set(float64(stats.InUse))
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// ExecContext выполняет запрос с записью метрики
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query)()
	return d.db.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос с записью метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query)()
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос с записью метрики
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query)()
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, возвращая обёрнутый executor
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics, name: d.name}, nil
}

func (d *DB) observe(query string) func() {
	start := time.Now()
	return func() {
		d.metrics.DBQueryDuration.WithLabelValues(queryOperation(query)).Observe(time.Since(start).Seconds())
	}
}

// ExecContext выполняет запрос внутри транзакции с записью метрики
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.observe(query)()
	return t.tx.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос внутри транзакции с записью метрики
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.observe(query)()
	return t.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос внутри транзакции с записью метрики
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.observe(query)()
	return t.tx.QueryRowContext(ctx, query, args...)
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) observe(query string) func() {
	start := time.Now()
	return func() {
		t.metrics.DBQueryDuration.WithLabelValues(queryOperation(query)).Observe(time.Since(start).Seconds())
	}
}

// queryOperation извлекает первый токен запроса (SELECT/INSERT/UPDATE/DELETE)
// для лейбла метрики, чтобы не плодить кардинальность
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
