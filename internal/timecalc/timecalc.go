package timecalc

import (
	"iter"
	"time"
)

// DateOf truncates t to its calendar date, represented as midnight UTC.
// All date sets and sequences in clockfill use this canonical form.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns the ascending sequence of calendar dates from `from` to `to`
// inclusive, one per day. The sequence is empty when from is after to, and
// can be ranged over multiple times.
func Days(from, to time.Time) iter.Seq[time.Time] {
	first := DateOf(from)
	last := DateOf(to)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// isoWeekday returns the ISO weekday index: Monday=1 … Sunday=7.
func isoWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd
}

// MondayOfWeek returns the Monday of the ISO week containing d.
func MondayOfWeek(d time.Time) time.Time {
	return DateOf(d).AddDate(0, 0, -(isoWeekday(d) - 1))
}

// FridayOfWeek returns the Friday of the ISO week containing d. When d is a
// Saturday or Sunday the result is the Friday that has already passed, so a
// run executed over a weekend never projects into the next week.
func FridayOfWeek(d time.Time) time.Time {
	wd := isoWeekday(d)
	if wd <= 5 {
		return DateOf(d).AddDate(0, 0, 5-wd)
	}
	return DateOf(d).AddDate(0, 0, -(wd - 5))
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
