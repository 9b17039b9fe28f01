package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/m04kA/PetHotelService/internal/config"
	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
	"github.com/m04kA/PetHotelService/pkg/psqlbuilder"
)

// Store снимки в таблице вида settings(id text primary key, data jsonb, updated_at timestamptz)
type Store struct {
	db    DBExecutor
	table string
	now   func() time.Time
}

// NewStore создает хранилище поверх готового соединения
func NewStore(db DBExecutor, table string) *Store {
	return &Store{db: db, table: table, now: time.Now}
}

// Open открывает пул соединений lib/pq и проверяет его
func Open(ctx context.Context, cfg config.PostgresSyncConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres.Open: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres.Open: ping: %w", err)
	}
	return db, nil
}

// Name имя бэкенда для логов и метрик
func (s *Store) Name() string {
	return "postgres"
}

// EnsureSchema создает таблицу, если ее нет
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.schemaQuery()); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Save записывает снимок (insert или update по id)
func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	if err := syncstore.ValidateKey(key); err != nil {
		return err
	}

	query, args, err := s.upsertQuery(key, data).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает снимок по id
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := syncstore.ValidateKey(key); err != nil {
		return nil, err
	}

	query, args, err := s.loadQuery(key).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var data []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, syncstore.ErrNotFound
		}
		return nil, fmt.Errorf("%w: Load: %v", ErrScanRow, err)
	}
	return data, nil
}

func (s *Store) upsertQuery(key string, data []byte) squirrel.InsertBuilder {
	return psqlbuilder.Insert(s.table).
		Columns("id", "data", "updated_at").
		Values(key, string(data), s.now().UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at")
}

func (s *Store) loadQuery(key string) squirrel.SelectBuilder {
	return psqlbuilder.Select("data").
		From(s.table).
		Where(squirrel.Eq{"id": key})
}

func (s *Store) schemaQuery() string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, s.table)
}
