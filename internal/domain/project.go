package domain

import "time"

type RepeatUnit string

const (
	RepeatUnitWeek RepeatUnit = "WEEK"
)

// Project is a community-service project published by an organization.
// Dates are yyyy-mm-dd strings and times of day are hh:mm strings; the
// apply-by deadline is a full instant because admission compares it
// against the current time, not the current date.
type Project struct {
	ID             int32      `json:"id"`
	OrgID          int32      `json:"org_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	SlotsTotal     int32      `json:"slots_total"`
	RequiredHours  int32      `json:"required_hours"`
	ApplyBy        time.Time  `json:"apply_by"`
	RepeatInterval int32      `json:"repeat_interval"` // 0 means one-time
	RepeatUnit     RepeatUnit `json:"repeat_unit"`
	DaysOfWeek     []string   `json:"days_of_week"`
	TimeStart      string     `json:"time_start"`
	TimeEnd        string     `json:"time_end"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	CreatedOn      time.Time  `json:"created_on"`
}

func (p *Project) OneTime() bool {
	return p.RepeatInterval == 0
}

// Capacity is the confirmed-occupancy view of a project. Remaining never
// goes negative even if confirmations raced past the limit historically.
type Capacity struct {
	SlotsTotal int32 `json:"slots_total"`
	Confirmed  int32 `json:"confirmed"`
}

func (c Capacity) Remaining() int32 {
	if c.Confirmed >= c.SlotsTotal {
		return 0
	}
	return c.SlotsTotal - c.Confirmed
}

func (c Capacity) Full() bool {
	return c.Confirmed >= c.SlotsTotal
}
