package schedule

import (
	"fmt"
	"time"
)

// WeekdaysMondayFirst is the canonical ordering used for rule validation
// and anything user-facing. Date arithmetic inside the projector uses
// time.Weekday (Sunday-first); the two conventions meet only through
// ParseWeekday and never leak into each other.
var WeekdaysMondayFirst = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseWeekday maps a weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return d, nil
}
