package plan

import (
	"fmt"
	"time"
)

// ClockTime is a time of day without a date, e.g. 08:00.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var c ClockTime
	if _, err := fmt.Sscanf(s, "%d:%d", &c.Hour, &c.Minute); err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q (want HH:MM): %w", s, err)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return ClockTime{}, fmt.Errorf("time of day %q out of range", s)
	}
	return c, nil
}

// minutes returns the offset from midnight in minutes.
func (c ClockTime) minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Schedule is the fixed daily work window: start and end time of day plus the
// IANA timezone those times are expressed in. End must be after Start on the
// same calendar day.
type Schedule struct {
	Start    ClockTime
	End      ClockTime
	Timezone string
}

// Validate checks the end-after-start invariant and the timezone name.
func (s Schedule) Validate() error {
	if s.End.minutes() <= s.Start.minutes() {
		return fmt.Errorf("schedule end %s must be after start %s", s.End, s.Start)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return nil
}

// Location loads the schedule's timezone.
func (s Schedule) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// HoursPerDay returns the daily hours as a fraction, e.g. 08:00–16:30 → 8.5.
func (s Schedule) HoursPerDay() float64 {
	return float64(s.End.minutes()-s.Start.minutes()) / 60
}

// Window combines a calendar date with the schedule's local times in loc and
// returns the absolute start and end instants converted to UTC.
func (s Schedule) Window(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, s.Start.Hour, s.Start.Minute, 0, 0, loc)
	end := time.Date(y, m, d, s.End.Hour, s.End.Minute, 0, 0, loc)
	return start.UTC(), end.UTC()
}
