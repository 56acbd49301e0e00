package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	t.Run("truncates to UTC midnight", func(t *testing.T) {
		in := time.Date(2025, 3, 14, 18, 42, 7, 123, time.UTC)
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), DayOf(in))
	})

	t.Run("same instant yields same day regardless of zone", func(t *testing.T) {
		// 2025-03-14T23:30Z viewed from UTC+5 is already March 15 locally,
		// but the stored day must not drift: both representations of the
		// instant normalize identically.
		utc := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
		plus5 := utc.In(time.FixedZone("UTC+5", 5*3600))
		assert.Equal(t, DayOf(utc), DayOf(plus5))
		assert.Equal(t, DayKey(utc), DayKey(plus5))
	})
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, "2025-03-14", DayKey(day))

	_, err = ParseDay("14/03/2025")
	assert.Error(t, err)
	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestStartOfWeek(t *testing.T) {
	// 2025-03-14 is a Friday; the week starts the preceding Sunday.
	friday := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(friday))

	// A Sunday is its own week start.
	sunday := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), StartOfWeek(sunday))
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), DaysAgo(0, now))
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), DaysAgo(7, now))
	// Crosses a month boundary.
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), DaysAgo(14, now))
}
