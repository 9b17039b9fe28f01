package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRoomNames(t *testing.T) {
	names := AllRoomNames()

	require.Len(t, names, TotalRooms)
	assert.Equal(t, []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"VIP 01", "VIP 02", "VIP 03", "VIP 04", "VIP 05",
	}, names)
}

func TestIsValidRoom(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"1", true},
		{"10", true},
		{"VIP 01", true},
		{"VIP 05", true},
		{"0", false},
		{"11", false},
		{"01", false},
		{"VIP 06", false},
		{"VIP 1", false},
		{"VIP 010", false},
		{"unassigned", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidRoom(tt.name))
		})
	}

	assert.ErrorIs(t, ValidateRoom("VIP 9"), ErrInvalidRoom)
	assert.NoError(t, ValidateRoom("VIP 03"))
}

func TestPartnerOf(t *testing.T) {
	tests := []struct {
		room    string
		partner string
	}{
		{"1", "VIP 01"},
		{"5", "VIP 05"},
		{"6", "VIP 01"},
		{"10", "VIP 05"},
		{"VIP 01", "1"},
		{"VIP 04", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.room, func(t *testing.T) {
			partner, ok := PartnerOf(tt.room)
			require.True(t, ok)
			assert.Equal(t, tt.partner, partner)
		})
	}

	_, ok := PartnerOf("VIP 07")
	assert.False(t, ok)
}

// Пара симметрична: если A блокирует B, то B блокирует A
func TestPartnersAreSymmetric(t *testing.T) {
	for _, room := range AllRoomNames() {
		for _, partner := range PartnersOf(room) {
			assert.Contains(t, PartnersOf(partner), room, "room %s partner %s", room, partner)
		}
	}
}

func TestPrimaryPairIsInvolutionForFirstRow(t *testing.T) {
	for _, room := range []string{"1", "2", "3", "4", "5", "VIP 01", "VIP 02", "VIP 03", "VIP 04", "VIP 05"} {
		partner, ok := PartnerOf(room)
		require.True(t, ok)
		back, ok := PartnerOf(partner)
		require.True(t, ok)
		assert.Equal(t, room, back)
	}
}

func TestPartnersOfVIPCoversBothRows(t *testing.T) {
	assert.Equal(t, []string{"2", "7"}, PartnersOf("VIP 02"))
	assert.Equal(t, []string{"VIP 02"}, PartnersOf("7"))
	assert.Nil(t, PartnersOf("unknown"))
}

func TestDefaultRooms(t *testing.T) {
	rooms := DefaultRooms()
	require.Len(t, rooms, TotalRooms)

	byName := make(map[string]Room)
	for _, r := range rooms {
		byName[r.Name] = r
		assert.Equal(t, RoomVacant, r.Status)
	}

	assert.Equal(t, "r1", byName["1"].ID)
	assert.Equal(t, FloorUpper, byName["5"].Floor)
	assert.Equal(t, FloorLower, byName["6"].Floor)
	assert.Equal(t, 1, byName["6"].Column)
	assert.Equal(t, 5, byName["10"].Column)

	vip := byName["VIP 03"]
	assert.Equal(t, "vip3", vip.ID)
	assert.True(t, vip.IsVIP)
	assert.Equal(t, 3, vip.Column)
	assert.Equal(t, []string{"VIP"}, vip.Tags)
}
