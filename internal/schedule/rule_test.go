package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"communityserve-backend/internal/domain"
)

func validWeeklyRule() Rule {
	return Rule{
		RepeatInterval: 2,
		RepeatUnit:     domain.RepeatUnitWeek,
		DaysOfWeek:     []string{"Monday", "Thursday"},
		TimeStart:      "14:00",
		TimeEnd:        "16:00",
		StartDate:      "2025-06-02",
		EndDate:        "2025-06-30",
		ApplyBy:        time.Date(2025, 5, 30, 23, 59, 0, 0, time.UTC),
	}
}

func TestRuleValidate(t *testing.T) {
	t.Run("ValidWeekly", func(t *testing.T) {
		assert.NoError(t, validWeeklyRule().Validate())
	})

	t.Run("ValidOneTime", func(t *testing.T) {
		r := validWeeklyRule()
		r.RepeatInterval = 0
		r.DaysOfWeek = []string{"Monday"}
		r.StartDate = "2025-06-02"
		r.EndDate = "2025-06-02"
		assert.NoError(t, r.Validate())
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		r := validWeeklyRule()
		r.EndDate = "2025-06-01"
		assert.ErrorContains(t, r.Validate(), "before start date")
	})

	t.Run("BadDateFormat", func(t *testing.T) {
		r := validWeeklyRule()
		r.StartDate = "06/02/2025"
		assert.ErrorContains(t, r.Validate(), "invalid start date")
	})

	t.Run("ApplyByAfterStart", func(t *testing.T) {
		r := validWeeklyRule()
		r.ApplyBy = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		assert.ErrorContains(t, r.Validate(), "apply-by deadline")
	})

	t.Run("SessionTooShort", func(t *testing.T) {
		r := validWeeklyRule()
		r.TimeEnd = "14:30"
		assert.ErrorContains(t, r.Validate(), "at least one hour")
	})

	t.Run("ExactlyOneHourAllowed", func(t *testing.T) {
		r := validWeeklyRule()
		r.TimeEnd = "15:00"
		assert.NoError(t, r.Validate())
	})

	t.Run("NoWeekdays", func(t *testing.T) {
		r := validWeeklyRule()
		r.DaysOfWeek = nil
		assert.ErrorContains(t, r.Validate(), "at least one weekday")
	})

	t.Run("UnknownWeekday", func(t *testing.T) {
		r := validWeeklyRule()
		r.DaysOfWeek = []string{"Monday", "Funday"}
		assert.ErrorContains(t, r.Validate(), "unknown weekday")
	})

	t.Run("DuplicateWeekday", func(t *testing.T) {
		r := validWeeklyRule()
		r.DaysOfWeek = []string{"Monday", "Monday"}
		assert.ErrorContains(t, r.Validate(), "selected twice")
	})

	t.Run("IntervalWeekdayMismatch", func(t *testing.T) {
		r := validWeeklyRule()
		r.RepeatInterval = 3
		assert.ErrorContains(t, r.Validate(), "repeat interval is 3")
	})

	t.Run("UnsupportedRepeatUnit", func(t *testing.T) {
		r := validWeeklyRule()
		r.RepeatUnit = "MONTH"
		assert.ErrorContains(t, r.Validate(), "unsupported repeat unit")
	})

	t.Run("OneTimeMultipleWeekdays", func(t *testing.T) {
		r := validWeeklyRule()
		r.RepeatInterval = 0
		r.EndDate = r.StartDate
		assert.ErrorContains(t, r.Validate(), "exactly one weekday")
	})

	t.Run("OneTimeSpansDays", func(t *testing.T) {
		r := validWeeklyRule()
		r.RepeatInterval = 0
		r.DaysOfWeek = []string{"Monday"}
		assert.ErrorContains(t, r.Validate(), "ends on its start date")
	})

	t.Run("UnrealizableWeekdayInShortWindow", func(t *testing.T) {
		// 2025-06-02 through 2025-06-04 is Monday through Wednesday.
		r := validWeeklyRule()
		r.DaysOfWeek = []string{"Monday", "Thursday"}
		r.EndDate = "2025-06-04"
		assert.ErrorContains(t, r.Validate(), "never occurs")
	})

	t.Run("RealizabilitySkippedOnLongWindow", func(t *testing.T) {
		r := validWeeklyRule()
		r.EndDate = "2025-08-31"
		assert.NoError(t, r.Validate())
	})
}

func TestParseWeekday(t *testing.T) {
	for _, name := range WeekdaysMondayFirst {
		wd, err := ParseWeekday(name)
		assert.NoError(t, err)
		assert.Equal(t, name, wd.String())
	}

	_, err := ParseWeekday("monday")
	assert.Error(t, err)
}
