package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrencesWeekly(t *testing.T) {
	r := validWeeklyRule() // Monday and Thursday, 2025-06-02 through 2025-06-30

	t.Run("SevenDayWindowFromMonday", func(t *testing.T) {
		// Window covers Mon Jun 2 through Sun Jun 8: one Monday, one Thursday.
		now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
		occ, err := r.Occurrences(7, now, 7)
		require.NoError(t, err)
		require.Len(t, occ, 2)

		assert.Equal(t, "2025-06-02", occ[0].Date)
		assert.Equal(t, "Monday", occ[0].Weekday)
		assert.Equal(t, "14:00", occ[0].StartTime)
		assert.Equal(t, "16:00", occ[0].EndTime)
		assert.Equal(t, int32(7), occ[0].ProjectID)

		assert.Equal(t, "2025-06-05", occ[1].Date)
		assert.Equal(t, "Thursday", occ[1].Weekday)
	})

	t.Run("TimeOfDayDoesNotShiftDates", func(t *testing.T) {
		morning := time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)
		night := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)

		a, err := r.Occurrences(7, morning, 7)
		require.NoError(t, err)
		b, err := r.Occurrences(7, night, 7)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Deterministic", func(t *testing.T) {
		now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
		a, err := r.Occurrences(7, now, 30)
		require.NoError(t, err)
		b, err := r.Occurrences(7, now, 30)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("ClampedToEndDate", func(t *testing.T) {
		// Lookahead reaches far past June 30; nothing after the end date emits.
		now := time.Date(2025, 6, 23, 8, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(7, now, 60)
		require.NoError(t, err)
		require.NotEmpty(t, occ)
		for _, o := range occ {
			assert.LessOrEqual(t, o.Date, "2025-06-30")
		}
		assert.Equal(t, "2025-06-30", occ[len(occ)-1].Date)
	})

	t.Run("BeforeStartDate", func(t *testing.T) {
		// Today is well before the window opens; a short lookahead never
		// reaches it.
		now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(7, now, 7)
		require.NoError(t, err)
		assert.Empty(t, occ)

		// A lookahead long enough to cross the start date picks up from there.
		occ, err = r.Occurrences(7, now, 40)
		require.NoError(t, err)
		require.NotEmpty(t, occ)
		assert.Equal(t, "2025-06-02", occ[0].Date)
	})

	t.Run("AfterEndDate", func(t *testing.T) {
		now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(7, now, 30)
		require.NoError(t, err)
		assert.Empty(t, occ)
	})

	t.Run("SortedAscending", func(t *testing.T) {
		now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(7, now, 29)
		require.NoError(t, err)
		require.Len(t, occ, 9) // 5 Mondays and 4 Thursdays in June 2 through 30
		for i := 1; i < len(occ); i++ {
			assert.Less(t, occ[i-1].Date, occ[i].Date)
		}
	})

	t.Run("InvalidLookahead", func(t *testing.T) {
		_, err := r.Occurrences(7, time.Now(), 0)
		assert.Error(t, err)
	})
}

func TestOccurrencesOneTime(t *testing.T) {
	r := Rule{
		RepeatInterval: 0,
		DaysOfWeek:     []string{"Saturday"},
		TimeStart:      "09:00",
		TimeEnd:        "12:00",
		StartDate:      "2025-06-07",
		EndDate:        "2025-06-07",
		ApplyBy:        time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}

	t.Run("SingleOccurrence", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(3, now, 14)
		require.NoError(t, err)
		require.Len(t, occ, 1)
		assert.Equal(t, "2025-06-07", occ[0].Date)
		assert.Equal(t, "Saturday", occ[0].Weekday)
	})

	t.Run("GoneAfterTheDay", func(t *testing.T) {
		now := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
		occ, err := r.Occurrences(3, now, 14)
		require.NoError(t, err)
		assert.Empty(t, occ)
	})
}
