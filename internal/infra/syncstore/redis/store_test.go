package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PetHotelService/internal/infra/syncstore"
)

type memoryClient struct {
	values map[string]string
	err    error
}

func (m *memoryClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if m.err != nil {
		return goredis.NewStringResult("", m.err)
	}
	v, ok := m.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (m *memoryClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *goredis.StatusCmd {
	if m.err != nil {
		return goredis.NewStatusResult("", m.err)
	}
	m.values[key] = string(value.([]byte))
	return goredis.NewStatusResult("OK", nil)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	client := &memoryClient{values: map[string]string{}}
	store := NewStore(client, "pethotel:sync:")

	_, err := store.Load(ctx, "hotel")
	assert.ErrorIs(t, err, syncstore.ErrNotFound)

	require.NoError(t, store.Save(ctx, "hotel", []byte(`{"pets":[]}`)))
	assert.Contains(t, client.values, "pethotel:sync:hotel")

	data, err := store.Load(ctx, "hotel")
	require.NoError(t, err)
	assert.Equal(t, `{"pets":[]}`, string(data))
}

func TestErrorsArePropagated(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	store := NewStore(&memoryClient{values: map[string]string{}, err: boom}, "")

	assert.ErrorIs(t, store.Save(ctx, "hotel", []byte("{}")), boom)
	_, err := store.Load(ctx, "hotel")
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, store.Save(ctx, "", nil), syncstore.ErrInvalidKey)
}
