package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", d.String())
	assert.Equal(t, "2025-01", d.Month())

	_, err = ParseDate("10.01.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2025-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.True(t, d.Equal(MustParseDate("2024-02-28")))
	assert.Equal(t, "2024-02-01", d.FirstOfMonth().String())
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d := DateOf(time.Date(2025, 1, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-01-10", d.String())
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		CheckIn Date `json:"checkIn"`
	}

	data, err := json.Marshal(wrapper{CheckIn: MustParseDate("2025-01-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2025-01-10"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal(data, &w))
	assert.Equal(t, "2025-01-10", w.CheckIn.String())

	err = json.Unmarshal([]byte(`{"checkIn":"not-a-date"}`), &w)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", m.String())

	_, err = ParseMonth("2025/03")
	assert.Error(t, err)
}
