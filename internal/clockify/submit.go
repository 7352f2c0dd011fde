package clockify

import (
	"context"
	"fmt"
	"time"

	"github.com/nvidal/clockfill/internal/plan"
)

// SubmitError means the remote create call failed for one specific date.
// Entries submitted before the failing one remain created remotely; there
// is no rollback.
type SubmitError struct {
	Date time.Time
	Err  error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submitting entry for %s: %v", e.Date.Format("2006-01-02"), e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// SubmitOptions configures a submission run.
type SubmitOptions struct {
	WorkspaceID  string
	ProjectID    string
	TagID        string
	HolidayTagID string
	Billable     bool
	Schedule     plan.Schedule
	Location     *time.Location
	DryRun       bool
}

// SubmitEntries creates one remote time entry per planned entry, strictly in
// order, one blocking call at a time with no retry. The first failure aborts
// immediately. In dry-run mode it prints the planned lines and issues no
// calls. It prints per-day progress and returns how many entries were
// created (or would have been).
func (c *Client) SubmitEntries(ctx context.Context, entries []plan.Entry, opts SubmitOptions) (int, error) {
	created := 0
	for _, e := range entries {
		day := e.Date.Format("2006-01-02")

		if opts.DryRun {
			fmt.Printf("[dry-run] %s | %s-%s | %s\n",
				day, opts.Schedule.Start, opts.Schedule.End, e.Description)
			created++
			continue
		}

		start, end := opts.Schedule.Window(e.Date, opts.Location)
		tagID := opts.TagID
		if e.Category == plan.Holiday {
			tagID = opts.HolidayTagID
		}

		te, err := c.CreateEntry(ctx, opts.WorkspaceID, CreateEntryRequest{
			Start:       start.Format(apiTimeLayout),
			End:         end.Format(apiTimeLayout),
			Billable:    opts.Billable,
			Description: e.Description,
			ProjectID:   opts.ProjectID,
			TagIDs:      []string{tagID},
		})
		if err != nil {
			return created, &SubmitError{Date: e.Date, Err: err}
		}
		fmt.Printf("[ok] %s created id=%s (%s)\n", day, te.ID, e.Description)
		created++
	}
	return created, nil
}
