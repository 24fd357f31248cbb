package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("12:60")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("later")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	next, err := ts.AddMinutes(45)
	require.NoError(t, err)
	// Переход через полночь
	assert.Equal(t, "00:15", next.String())

	next, err = ts.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "23:45", next.String())
}

func TestComparisons(t *testing.T) {
	earlier := TimeString("09:00")
	later := TimeString("17:00")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.False(t, earlier.IsBefore(earlier))
}

func TestScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, "08:15", ts.String())
}
