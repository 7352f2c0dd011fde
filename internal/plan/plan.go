// Package plan computes which calendar days in a range still need a time
// entry and how each day should be categorized. It is pure: all remote state
// (holiday calendar, already-recorded dates) is passed in as sets, so the
// engine itself never performs I/O and cannot fail.
package plan

import (
	"time"

	"github.com/nvidal/clockfill/internal/timecalc"
)

// Range is an inclusive pair of calendar dates. A range whose From is after
// its To is empty and yields no days.
type Range struct {
	From time.Time
	To   time.Time
}

// Empty reports whether the range contains no days.
func (r Range) Empty() bool {
	return timecalc.DateOf(r.From).After(timecalc.DateOf(r.To))
}

// Category classifies a pending day.
type Category int

const (
	Work Category = iota
	Holiday
)

func (c Category) String() string {
	if c == Holiday {
		return "holiday"
	}
	return "work"
}

// Entry is a single day the engine has decided must be created remotely.
type Entry struct {
	Date        time.Time
	Category    Category
	Description string
}

// Stats are the aggregate numbers reported alongside a plan.
type Stats struct {
	WorkDays    int
	HolidayDays int
	HoursPerDay float64
	TotalHours  float64
}

// Plan is the full ordered submission plan for one run.
type Plan struct {
	Entries []Entry
	Stats   Stats
}

// Input carries everything the decision function needs. Holidays and
// Existing are keyed by canonical dates (timecalc.DateOf).
type Input struct {
	Range              Range
	IncludeWeekends    bool
	Holidays           map[time.Time]bool
	Existing           map[time.Time]bool
	Description        string
	HolidayDescription string
	Schedule           Schedule
}

// Build walks the range day by day in ascending order and emits one pending
// entry per day that is a configured weekday (or any day when weekends are
// included) and has no recorded entry yet. A day in the holiday set is
// categorized Holiday and gets the holiday description; holiday status takes
// precedence over work, while weekend exclusion takes precedence over both.
func Build(in Input) Plan {
	p := Plan{Stats: Stats{HoursPerDay: in.Schedule.HoursPerDay()}}

	for d := range timecalc.Days(in.Range.From, in.Range.To) {
		if !in.IncludeWeekends && timecalc.IsWeekend(d) {
			continue
		}
		if in.Existing[d] {
			// Already recorded remotely; skipping keeps reruns idempotent.
			continue
		}
		e := Entry{Date: d, Category: Work, Description: in.Description}
		if in.Holidays[d] {
			e.Category = Holiday
			e.Description = in.HolidayDescription
			p.Stats.HolidayDays++
		} else {
			p.Stats.WorkDays++
		}
		p.Entries = append(p.Entries, e)
	}

	p.Stats.TotalHours = float64(len(p.Entries)) * p.Stats.HoursPerDay
	return p
}

// WeeklyRange derives the weekly-mode range: from the day after the last
// recorded entry (or the Monday of today's week when there is none) up to the
// Friday of today's week. The result may be empty, which means nothing is
// pending rather than an error.
func WeeklyRange(lastEntry *time.Time, today time.Time) Range {
	from := timecalc.MondayOfWeek(today)
	if lastEntry != nil {
		from = timecalc.DateOf(*lastEntry).AddDate(0, 0, 1)
	}
	return Range{From: from, To: timecalc.FridayOfWeek(today)}
}
