package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tod, err := Parse("09:10")
	require.NoError(t, err)
	assert.Equal(t, "09:10:00", tod.Format("15:04:05"))

	tod, err = Parse("09:10:30")
	require.NoError(t, err)
	assert.Equal(t, "09:10:30", tod.Format("15:04:05"))

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestAfter_StrictAtSecondGranularity(t *testing.T) {
	cutoff, err := Parse("09:10")
	require.NoError(t, err)

	exact, _ := Parse("09:10:00")
	oneLater, _ := Parse("09:10:01")
	oneEarlier, _ := Parse("09:09:59")

	assert.False(t, exact.After(cutoff), "equal to cutoff is not after")
	assert.True(t, oneLater.After(cutoff))
	assert.False(t, oneEarlier.After(cutoff))
}

func TestValue(t *testing.T) {
	tod, _ := Parse("22:00")
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "22:00:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("09:10:30"))
	assert.Equal(t, "09:10:30", tod.Format("15:04:05"))

	require.NoError(t, tod.Scan([]byte("14:00")))
	assert.Equal(t, "14:00:00", tod.Format("15:04:05"))

	assert.Error(t, tod.Scan(42))
}

func TestLocalDay_EveningDoesNotRollToUTCDate(t *testing.T) {
	lima := time.FixedZone("-05", -5*60*60)

	// 2025-09-22 23:30 in Lima is 2025-09-23 04:30 UTC.
	evening := time.Date(2025, 9, 23, 4, 30, 0, 0, time.UTC)
	got := LocalDay(evening, lima)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), got)

	// Just after local midnight it is the next local day.
	night := time.Date(2025, 9, 23, 5, 30, 0, 0, time.UTC)
	got = LocalDay(night, lima)
	assert.Equal(t, time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC), got)
}

func TestLocalTimeOfDay(t *testing.T) {
	lima := time.FixedZone("-05", -5*60*60)
	instant := time.Date(2025, 9, 23, 14, 10, 1, 0, time.UTC) // 09:10:01 in Lima

	tod := LocalTimeOfDay(instant, lima)
	assert.Equal(t, "09:10:01", tod.Format("15:04:05"))
}
