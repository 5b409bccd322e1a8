package attendance

import "time"

const DateLayout = "2006-01-02"

// Policy holds the organization-wide classification rules.
type Policy struct {
	LateCutoff       time.Duration // offset from local midnight
	HalfDayThreshold time.Duration
	Location         *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		LateCutoff:       16 * time.Hour,
		HalfDayThreshold: 4 * time.Hour,
		Location:         time.UTC,
	}
}

// Loc returns the policy timezone, UTC when unset.
func (p Policy) Loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// CalendarDate returns the YYYY-MM-DD day containing t in the policy timezone.
func (p Policy) CalendarDate(t time.Time) string {
	return t.In(p.Loc()).Format(DateLayout)
}

// CutoffOn returns the late cutoff instant on t's calendar day.
func (p Policy) CutoffOn(t time.Time) time.Time {
	local := t.In(p.Loc())
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Loc())
	return midnight.Add(p.LateCutoff)
}

// MonthRange returns the first and last calendar day of t's month.
func (p Policy) MonthRange(t time.Time) (from, to string) {
	local := t.In(p.Loc())
	first := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, p.Loc())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// DaysBefore returns the calendar day n days before t's day.
func (p Policy) DaysBefore(t time.Time, n int) string {
	local := t.In(p.Loc())
	day := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, p.Loc())
	return day.AddDate(0, 0, -n).Format(DateLayout)
}

// FormatClock renders an instant as a 12-hour wall clock time in the policy timezone.
func (p Policy) FormatClock(t time.Time) string {
	return t.In(p.Loc()).Format("03:04:05 PM")
}
