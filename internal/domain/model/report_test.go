package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Parallel()

	r, err := ParseDateRange("2026-03-01", "2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, 7, r.Days())
	assert.Equal(t, "2026-03-01", r.StartString())
	assert.Equal(t, "2026-03-07", r.EndString())
}

func TestParseDateRange_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseDateRange("03/01/2026", "2026-03-07")
	assert.Error(t, err)

	_, err = ParseDateRange("2026-03-07", "2026-03-01")
	assert.Error(t, err)
}

func TestDateRange_Previous_ShiftsByOwnLength(t *testing.T) {
	t.Parallel()

	// 7-day window ending "yesterday": previous period is the 7 days before it.
	r, err := ParseDateRange("2026-03-08", "2026-03-14")
	require.NoError(t, err)

	prev := r.Previous()
	assert.Equal(t, "2026-03-01", prev.StartString())
	assert.Equal(t, "2026-03-07", prev.EndString())
	assert.Equal(t, r.Days(), prev.Days())
}

func TestDateRange_Previous_SingleDay(t *testing.T) {
	t.Parallel()

	r, err := ParseDateRange("2026-03-14", "2026-03-14")
	require.NoError(t, err)

	prev := r.Previous()
	assert.Equal(t, "2026-03-13", prev.StartString())
	assert.Equal(t, "2026-03-13", prev.EndString())
}
