package clockify

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/nvidal/clockfill/internal/timecalc"
)

// entriesPageSize matches Clockify's maximum page size for time entries.
const entriesPageSize = 500

// lastEntryLookback bounds how far back LastEntryDate searches.
const lastEntryLookback = 400 * 24 * time.Hour

// apiTimeLayout is the UTC instant format the Clockify API expects.
const apiTimeLayout = "2006-01-02T15:04:05Z"

// TimeEntry is a recorded Clockify time entry.
type TimeEntry struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	TimeInterval struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"timeInterval"`
	// Some API variants report the start at the top level instead.
	Start string `json:"start"`
}

// startInstant returns the entry's start as an absolute instant. The API
// reports timezone-aware RFC 3339 timestamps.
func (e TimeEntry) startInstant() (time.Time, bool) {
	s := e.TimeInterval.Start
	if s == "" {
		s = e.Start
	}
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// StartDate returns the UTC calendar date of the entry's start instant.
func (e TimeEntry) StartDate() (time.Time, bool) {
	t, ok := e.startInstant()
	if !ok {
		return time.Time{}, false
	}
	return timecalc.DateOf(t.UTC()), true
}

// UserTimeEntries fetches all of a user's time entries in [from, to],
// optionally filtered to one project, following Clockify's page-numbered
// pagination until a short page.
func (c *Client) UserTimeEntries(ctx context.Context, workspaceID, userID string, from, to time.Time, projectID string) ([]TimeEntry, error) {
	var all []TimeEntry
	for page := 1; ; page++ {
		params := url.Values{
			"start":     {from.UTC().Format(apiTimeLayout)},
			"end":       {to.UTC().Format(apiTimeLayout)},
			"page":      {fmt.Sprint(page)},
			"page-size": {fmt.Sprint(entriesPageSize)},
		}
		if projectID != "" {
			params.Set("project", projectID)
		}

		var batch []TimeEntry
		path := "/workspaces/" + workspaceID + "/user/" + userID + "/time-entries"
		if err := c.get(ctx, path, params, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < entriesPageSize {
			return all, nil
		}
	}
}

// ExistingEntryDates returns the set of UTC calendar dates in [from, to]
// that already hold at least one entry for the user (and project, if set).
func (c *Client) ExistingEntryDates(ctx context.Context, workspaceID, userID string, from, to time.Time, projectID string) (map[time.Time]bool, error) {
	start := timecalc.DateOf(from)
	end := timecalc.DateOf(to).Add(24*time.Hour - time.Second)

	entries, err := c.UserTimeEntries(ctx, workspaceID, userID, start, end, projectID)
	if err != nil {
		return nil, err
	}

	dates := make(map[time.Time]bool)
	for _, e := range entries {
		if d, ok := e.StartDate(); ok {
			dates[d] = true
		}
	}
	return dates, nil
}

// LastEntryDate returns the most recent date holding an entry for the user
// (and project, if set) within the lookback window. ok is false when no
// entry exists in the window.
func (c *Client) LastEntryDate(ctx context.Context, workspaceID, userID, projectID string) (time.Time, bool, error) {
	now := time.Now().UTC()
	entries, err := c.UserTimeEntries(ctx, workspaceID, userID, now.Add(-lastEntryLookback), now, projectID)
	if err != nil {
		return time.Time{}, false, err
	}

	var last time.Time
	var found bool
	for _, e := range entries {
		d, ok := e.StartDate()
		if !ok {
			continue
		}
		if !found || d.After(last) {
			last = d
			found = true
		}
	}
	return last, found, nil
}

// CreateEntryRequest is the payload for creating one time entry.
type CreateEntryRequest struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Billable    bool     `json:"billable"`
	Description string   `json:"description"`
	ProjectID   string   `json:"projectId"`
	TagIDs      []string `json:"tagIds"`
}

// CreateEntry creates a time entry in a workspace and returns it. The API
// does not deduplicate: calling this twice for the same window creates two
// entries, so callers must exclude already-recorded dates beforehand.
func (c *Client) CreateEntry(ctx context.Context, workspaceID string, req CreateEntryRequest) (TimeEntry, error) {
	var created TimeEntry
	path := "/workspaces/" + workspaceID + "/time-entries"
	if err := c.post(ctx, path, req, &created); err != nil {
		return TimeEntry{}, err
	}
	return created, nil
}
