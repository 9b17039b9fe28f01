package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов. Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
