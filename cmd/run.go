package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nvidal/clockfill/internal/cache"
	"github.com/nvidal/clockfill/internal/clockify"
	"github.com/nvidal/clockfill/internal/config"
	"github.com/nvidal/clockfill/internal/holidays"
	"github.com/nvidal/clockfill/internal/plan"
	"github.com/nvidal/clockfill/internal/secret"
)

// holidayDescription is the description used for holiday entries.
const holidayDescription = "Holiday"

// newClockifyClient loads the API key and builds the Clockify client.
func newClockifyClient() *clockify.Client {
	key, err := secret.APIKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return clockify.New(key)
}

// newHolidayClient builds the holiday client with the on-disk cache when the
// cache directory is available.
func newHolidayClient() *holidays.Client {
	dir, err := cache.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: holiday cache disabled: %v\n", err)
		return holidays.New()
	}
	return holidays.New(holidays.WithCache(cache.New(dir)))
}

// loadConfig loads the configuration file, exiting on local I/O errors.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// resolved holds the remote IDs a run needs, looked up once before any date
// computation so a bad name aborts before anything is created.
type resolved struct {
	userID       string
	workspaceID  string
	projectID    string
	tagID        string
	holidayTagID string
}

func resolveAll(ctx context.Context, c *clockify.Client, cfg config.Config) (resolved, error) {
	var r resolved

	user, err := c.CurrentUser(ctx)
	if err != nil {
		return r, err
	}
	r.userID = user.ID

	if r.workspaceID, err = c.ResolveWorkspace(ctx, cfg.Workspace); err != nil {
		return r, err
	}
	if r.projectID, err = c.ResolveProject(ctx, r.workspaceID, cfg.Project); err != nil {
		return r, err
	}
	if r.tagID, err = c.ResolveTag(ctx, r.workspaceID, cfg.Tag); err != nil {
		return r, err
	}
	if r.holidayTagID, err = c.ResolveTag(ctx, r.workspaceID, cfg.HolidayTag); err != nil {
		return r, err
	}
	return r, nil
}

// printSummary shows the computed plan before anything is submitted.
func printSummary(r plan.Range, p plan.Plan, schedule plan.Schedule, desc string) {
	fmt.Println("Summary:")
	fmt.Printf("  Range: %s → %s\n", r.From.Format("2006-01-02"), r.To.Format("2006-01-02"))
	fmt.Printf("  Days to create: %d (%d work + %d holidays)\n",
		len(p.Entries), p.Stats.WorkDays, p.Stats.HolidayDays)
	fmt.Printf("  Description (work): %s\n", desc)
	fmt.Printf("  Hours per day: %.2fh (%s-%s)\n", p.Stats.HoursPerDay, schedule.Start, schedule.End)
	fmt.Printf("  Total hours: %.2fh\n", p.Stats.TotalHours)
	fmt.Println()
}

// submitPlan runs the sequential submission and prints the closing line.
func submitPlan(ctx context.Context, c *clockify.Client, p plan.Plan, opts clockify.SubmitOptions) {
	created, err := c.SubmitEntries(ctx, p.Entries, opts)
	if err != nil {
		// Entries before the failing one are already created remotely.
		fmt.Fprintf(os.Stderr, "%v (%d entries were created before the failure)\n", err, created)
		os.Exit(1)
	}

	mode := "created"
	if opts.DryRun {
		mode = "planned (dry-run)"
	}
	fmt.Printf("\nDone. Entries %s: %d | Total hours: %.2fh\n", mode, created, p.Stats.TotalHours)
}

// scheduleLocation validates the configured schedule and loads its timezone.
func scheduleLocation(cfg config.Config) (plan.Schedule, *time.Location) {
	schedule, err := cfg.Schedule()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	loc, err := schedule.Location()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return schedule, loc
}
