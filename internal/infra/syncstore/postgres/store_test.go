package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
)

type execRecorder struct {
	query string
	args  []interface{}
	err   error
}

func (e *execRecorder) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return nil, e.err
}

func (e *execRecorder) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestUpsertQuery(t *testing.T) {
	store := NewStore(nil, "settings")
	store.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	query, args, err := store.upsertQuery("hotel", []byte(`{"bookings":[]}`)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO settings (id,data,updated_at) VALUES ($1,$2,$3) "+
			"ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at",
		query)
	assert.Equal(t, []interface{}{"hotel", `{"bookings":[]}`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}, args)
}

func TestLoadQuery(t *testing.T) {
	query, args, err := NewStore(nil, "settings").loadQuery("hotel").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT data FROM settings WHERE id = $1", query)
	assert.Equal(t, []interface{}{"hotel"}, args)
}

func TestSaveExecutesUpsert(t *testing.T) {
	db := &execRecorder{}
	store := NewStore(db, "settings")

	require.NoError(t, store.Save(context.Background(), "hotel", []byte("{}")))
	assert.Contains(t, db.query, "ON CONFLICT (id)")
	assert.Len(t, db.args, 3)

	db.err = errors.New("connection refused")
	assert.ErrorIs(t, store.Save(context.Background(), "hotel", []byte("{}")), ErrExecQuery)

	assert.ErrorIs(t, store.Save(context.Background(), "../x", nil), syncstore.ErrInvalidKey)
}

func TestEnsureSchema(t *testing.T) {
	db := &execRecorder{}
	require.NoError(t, NewStore(db, "settings").EnsureSchema(context.Background()))
	assert.Contains(t, db.query, "CREATE TABLE IF NOT EXISTS settings")
}
