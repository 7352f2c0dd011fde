package plan_test

import (
	"testing"
	"time"

	"github.com/nvidal/clockfill/internal/plan"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eightToFour() plan.Schedule {
	return plan.Schedule{
		Start:    plan.ClockTime{Hour: 8},
		End:      plan.ClockTime{Hour: 16},
		Timezone: "America/Bogota",
	}
}

func dateSet(dates ...time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set
}

func TestBuild_AugustWeekdays(t *testing.T) {
	// August 2025 has 21 weekdays; no holidays, no existing entries.
	p := plan.Build(plan.Input{
		Range:       plan.Range{From: date(2025, 8, 1), To: date(2025, 8, 31)},
		Description: "Login Radius tickets",
		Schedule:    eightToFour(),
	})

	if len(p.Entries) != 21 {
		t.Fatalf("entries = %d, want 21", len(p.Entries))
	}
	if p.Stats.WorkDays != 21 || p.Stats.HolidayDays != 0 {
		t.Errorf("stats = %d work + %d holiday, want 21 + 0", p.Stats.WorkDays, p.Stats.HolidayDays)
	}
	if p.Stats.HoursPerDay != 8.0 {
		t.Errorf("HoursPerDay = %v, want 8.0", p.Stats.HoursPerDay)
	}
	if p.Stats.TotalHours != 168.0 {
		t.Errorf("TotalHours = %v, want 168.0", p.Stats.TotalHours)
	}
	for _, e := range p.Entries {
		if e.Category != plan.Work {
			t.Errorf("%s categorized %s, want work", e.Date.Format("2006-01-02"), e.Category)
		}
		if e.Description != "Login Radius tickets" {
			t.Errorf("description = %q", e.Description)
		}
	}
}

func TestBuild_EmptyRange(t *testing.T) {
	p := plan.Build(plan.Input{
		Range:    plan.Range{From: date(2025, 8, 31), To: date(2025, 8, 1)},
		Schedule: eightToFour(),
	})
	if len(p.Entries) != 0 {
		t.Errorf("entries = %d, want 0 for reversed range", len(p.Entries))
	}
	if p.Stats.TotalHours != 0 {
		t.Errorf("TotalHours = %v, want 0", p.Stats.TotalHours)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	in := plan.Input{
		Range:       plan.Range{From: date(2025, 8, 1), To: date(2025, 8, 31)},
		Description: "work",
		Schedule:    eightToFour(),
	}
	first := plan.Build(in)

	existing := make(map[time.Time]bool)
	for _, e := range first.Entries {
		existing[e.Date] = true
	}
	in.Existing = existing

	second := plan.Build(in)
	if len(second.Entries) != 0 {
		t.Errorf("second run produced %d entries, want 0", len(second.Entries))
	}
}

func TestBuild_HolidayPrecedence(t *testing.T) {
	wednesday := date(2025, 8, 20)
	p := plan.Build(plan.Input{
		Range:              plan.Range{From: date(2025, 8, 18), To: date(2025, 8, 22)},
		Holidays:           dateSet(wednesday),
		Description:        "work",
		HolidayDescription: "Holiday",
		Schedule:           eightToFour(),
	})

	if len(p.Entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(p.Entries))
	}
	for _, e := range p.Entries {
		if e.Date.Equal(wednesday) {
			if e.Category != plan.Holiday {
				t.Errorf("holiday Wednesday categorized %s", e.Category)
			}
			if e.Description != "Holiday" {
				t.Errorf("holiday description = %q, want %q", e.Description, "Holiday")
			}
			continue
		}
		if e.Category != plan.Work {
			t.Errorf("%s categorized %s, want work", e.Date.Format("2006-01-02"), e.Category)
		}
	}
	if p.Stats.WorkDays != 4 || p.Stats.HolidayDays != 1 {
		t.Errorf("stats = %d work + %d holiday, want 4 + 1", p.Stats.WorkDays, p.Stats.HolidayDays)
	}
}

func TestBuild_WeekendExcludedEvenIfHoliday(t *testing.T) {
	saturday := date(2025, 8, 16)
	p := plan.Build(plan.Input{
		Range:              plan.Range{From: date(2025, 8, 15), To: date(2025, 8, 17)},
		Holidays:           dateSet(saturday),
		Description:        "work",
		HolidayDescription: "Holiday",
		Schedule:           eightToFour(),
	})

	if len(p.Entries) != 1 {
		t.Fatalf("entries = %d, want 1 (Friday only)", len(p.Entries))
	}
	if !p.Entries[0].Date.Equal(date(2025, 8, 15)) {
		t.Errorf("entry date = %s, want 2025-08-15", p.Entries[0].Date.Format("2006-01-02"))
	}
}

func TestBuild_IncludeWeekends(t *testing.T) {
	p := plan.Build(plan.Input{
		Range:           plan.Range{From: date(2025, 8, 15), To: date(2025, 8, 17)},
		IncludeWeekends: true,
		Description:     "work",
		Schedule:        eightToFour(),
	})
	if len(p.Entries) != 3 {
		t.Errorf("entries = %d, want 3 with weekends included", len(p.Entries))
	}
}

func TestBuild_SkipsExisting(t *testing.T) {
	p := plan.Build(plan.Input{
		Range:       plan.Range{From: date(2025, 10, 6), To: date(2025, 10, 10)},
		Existing:    dateSet(date(2025, 10, 7), date(2025, 10, 9)),
		Description: "work",
		Schedule:    eightToFour(),
	})
	if len(p.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(p.Entries))
	}
	want := []time.Time{date(2025, 10, 6), date(2025, 10, 8), date(2025, 10, 10)}
	for i, e := range p.Entries {
		if !e.Date.Equal(want[i]) {
			t.Errorf("entry %d = %s, want %s", i,
				e.Date.Format("2006-01-02"), want[i].Format("2006-01-02"))
		}
	}
}

func TestBuild_AscendingOrder(t *testing.T) {
	p := plan.Build(plan.Input{
		Range:       plan.Range{From: date(2025, 8, 1), To: date(2025, 8, 31)},
		Description: "work",
		Schedule:    eightToFour(),
	})
	for i := 1; i < len(p.Entries); i++ {
		if !p.Entries[i].Date.After(p.Entries[i-1].Date) {
			t.Fatalf("entries not strictly ascending at index %d", i)
		}
	}
}

func TestWeeklyRange_FromLastEntry(t *testing.T) {
	// Last recorded entry Tuesday 2025-10-07, today Friday 2025-10-10.
	last := date(2025, 10, 7)
	r := plan.WeeklyRange(&last, date(2025, 10, 10))

	if !r.From.Equal(date(2025, 10, 8)) {
		t.Errorf("From = %s, want 2025-10-08", r.From.Format("2006-01-02"))
	}
	if !r.To.Equal(date(2025, 10, 10)) {
		t.Errorf("To = %s, want 2025-10-10", r.To.Format("2006-01-02"))
	}

	p := plan.Build(plan.Input{Range: r, Description: "work", Schedule: eightToFour()})
	if len(p.Entries) != 3 {
		t.Errorf("entries = %d, want 3 (Wed, Thu, Fri)", len(p.Entries))
	}
}

func TestWeeklyRange_NoPriorEntries(t *testing.T) {
	r := plan.WeeklyRange(nil, date(2025, 10, 10))
	if !r.From.Equal(date(2025, 10, 6)) {
		t.Errorf("From = %s, want Monday 2025-10-06", r.From.Format("2006-01-02"))
	}
	if !r.To.Equal(date(2025, 10, 10)) {
		t.Errorf("To = %s, want Friday 2025-10-10", r.To.Format("2006-01-02"))
	}
}

func TestWeeklyRange_NothingPending(t *testing.T) {
	// Last entry already on this week's Friday: start > end, empty range.
	last := date(2025, 10, 10)
	r := plan.WeeklyRange(&last, date(2025, 10, 10))
	if !r.Empty() {
		t.Errorf("range %s → %s should be empty",
			r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	}
	p := plan.Build(plan.Input{Range: r, Schedule: eightToFour()})
	if len(p.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(p.Entries))
	}
}
