package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	tm := time.Date(2025, 12, 15, 10, 30, 45, 0, time.UTC)

	assert.Equal(t, "2025-12-15", FormatDate(tm))
}

func TestStartOfDay(t *testing.T) {
	tm := time.Date(2025, 12, 15, 14, 35, 22, 123456789, time.UTC)

	result := StartOfDay(tm)

	assert.Equal(t, 2025, result.Year())
	assert.Equal(t, time.December, result.Month())
	assert.Equal(t, 15, result.Day())
	assert.Equal(t, 0, result.Hour())
	assert.Equal(t, 0, result.Minute())
	assert.Equal(t, 0, result.Second())
	assert.Equal(t, 0, result.Nanosecond())
}

func TestStartOfDay_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)
	tm := time.Date(2025, 12, 15, 14, 35, 22, 0, loc)

	result := StartOfDay(tm)

	assert.Equal(t, loc, result.Location())
}
