package schedule

import (
	"fmt"
	"time"
)

// Occurrence is one concrete calendar instance of a project. Occurrences
// are derived on demand and never persisted.
type Occurrence struct {
	ProjectID int32  `json:"project_id"`
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Occurrences expands the rule into concrete sessions, walking one
// calendar day at a time from max(now, start date) through the end of a
// lookahead window of lookaheadDays calendar days (today counts as the
// first), clamped to the project's end date. Days outside the active
// window never emit, even when the weekday matches. The result is sorted
// ascending by date; at most one occurrence exists per date.
func (r Rule) Occurrences(projectID int32, now time.Time, lookaheadDays int) ([]Occurrence, error) {
	if lookaheadDays <= 0 {
		return nil, fmt.Errorf("lookahead must be at least one day")
	}
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q", r.StartDate)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q", r.EndDate)
	}

	selected := make(map[time.Weekday]bool, len(r.DaysOfWeek))
	for _, name := range r.DaysOfWeek {
		wd, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		selected[wd] = true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today
	if from.Before(start) {
		from = start
	}
	to := today.AddDate(0, 0, lookaheadDays-1)
	if to.After(end) {
		to = end
	}

	var out []Occurrence
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !selected[d.Weekday()] {
			continue
		}
		out = append(out, Occurrence{
			ProjectID: projectID,
			Date:      d.Format(DateLayout),
			Weekday:   d.Weekday().String(),
			StartTime: r.TimeStart,
			EndTime:   r.TimeEnd,
		})
	}
	return out, nil
}
