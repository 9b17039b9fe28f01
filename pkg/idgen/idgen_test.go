package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDHasPrefix(t *testing.T) {
	id := UUID{}.NewID(PrefixBooking)
	require.True(t, strings.HasPrefix(id, PrefixBooking))

	_, err := uuid.Parse(strings.TrimPrefix(id, PrefixBooking))
	assert.NoError(t, err)
	assert.NotEqual(t, id, UUID{}.NewID(PrefixBooking))
}

func TestSequence(t *testing.T) {
	var s Sequence
	assert.Equal(t, "b-1", s.NewID(PrefixBooking))
	assert.Equal(t, "p-2", s.NewID(PrefixPet))
	for i := 0; i < 9; i++ {
		s.NewID("x")
	}
	assert.Equal(t, "x12", s.NewID("x"))
}
