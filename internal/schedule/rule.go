package schedule

import (
	"fmt"
	"time"

	"communityserve-backend/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MinSessionLength is the shortest allowed session time window.
const MinSessionLength = time.Hour

// Rule is the declarative schedule shape of a project: how often it
// repeats, on which weekdays, at what time of day, and over which
// inclusive date span. A RepeatInterval of 0 means a one-time project.
type Rule struct {
	RepeatInterval int32
	RepeatUnit     domain.RepeatUnit
	DaysOfWeek     []string
	TimeStart      string
	TimeEnd        string
	StartDate      string
	EndDate        string
	ApplyBy        time.Time
}

// FromProject extracts the recurrence rule of a project.
func FromProject(p *domain.Project) Rule {
	return Rule{
		RepeatInterval: p.RepeatInterval,
		RepeatUnit:     p.RepeatUnit,
		DaysOfWeek:     p.DaysOfWeek,
		TimeStart:      p.TimeStart,
		TimeEnd:        p.TimeEnd,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		ApplyBy:        p.ApplyBy,
	}
}

// Validate checks the shape of the rule at authoring time.
//
// For a recurring rule the number of selected weekdays must equal the
// repeat interval; a one-time rule selects exactly one day and ends the
// day it starts. When the active window spans seven days or fewer, every
// selected weekday must actually occur inside it — on longer windows
// every weekday necessarily recurs, so the check is skipped.
func (r Rule) Validate() error {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: expected yyyy-mm-dd", r.StartDate)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: expected yyyy-mm-dd", r.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", r.EndDate, r.StartDate)
	}
	if !r.ApplyBy.Before(start) {
		return fmt.Errorf("apply-by deadline must fall before the start date")
	}

	ts, err := time.Parse(TimeLayout, r.TimeStart)
	if err != nil {
		return fmt.Errorf("invalid start time %q: expected hh:mm", r.TimeStart)
	}
	te, err := time.Parse(TimeLayout, r.TimeEnd)
	if err != nil {
		return fmt.Errorf("invalid end time %q: expected hh:mm", r.TimeEnd)
	}
	if te.Sub(ts) < MinSessionLength {
		return fmt.Errorf("end time must be at least one hour after start time")
	}

	if len(r.DaysOfWeek) == 0 {
		return fmt.Errorf("at least one weekday must be selected")
	}
	seen := make(map[string]bool, len(r.DaysOfWeek))
	for _, name := range r.DaysOfWeek {
		if _, err := ParseWeekday(name); err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf("weekday %s selected twice", name)
		}
		seen[name] = true
	}

	if r.RepeatInterval == 0 {
		if len(r.DaysOfWeek) != 1 {
			return fmt.Errorf("a one-time project selects exactly one weekday, got %d", len(r.DaysOfWeek))
		}
		if r.EndDate != r.StartDate {
			return fmt.Errorf("a one-time project ends on its start date")
		}
	} else {
		if r.RepeatUnit != domain.RepeatUnitWeek {
			return fmt.Errorf("unsupported repeat unit %q", r.RepeatUnit)
		}
		if int32(len(r.DaysOfWeek)) != r.RepeatInterval {
			return fmt.Errorf("selected %d weekdays but repeat interval is %d", len(r.DaysOfWeek), r.RepeatInterval)
		}
	}

	// Realizability: only enforceable on windows of at most seven days.
	if end.Sub(start) <= 7*24*time.Hour {
		for _, name := range r.DaysOfWeek {
			wd, _ := ParseWeekday(name)
			if !weekdayInSpan(wd, start, end) {
				return fmt.Errorf("weekday %s never occurs between %s and %s", name, r.StartDate, r.EndDate)
			}
		}
	}

	return nil
}

func weekdayInSpan(wd time.Weekday, start, end time.Time) bool {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == wd {
			return true
		}
	}
	return false
}
