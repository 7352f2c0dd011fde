package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvidal/clockfill/internal/clockify"
	"github.com/nvidal/clockfill/internal/plan"
	"github.com/nvidal/clockfill/internal/timecalc"
)

var (
	fillFrom            string
	fillTo              string
	fillDesc            string
	fillDryRun          bool
	fillIncludeWeekends bool
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Create entries for an explicit date range",
	Args:  cobra.NoArgs,
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().StringVar(&fillFrom, "from", "", "Start date (YYYY-MM-DD)")
	fillCmd.Flags().StringVar(&fillTo, "to", "", "End date (YYYY-MM-DD)")
	fillCmd.Flags().StringVar(&fillDesc, "desc", "", "Description for work-day entries")
	fillCmd.Flags().BoolVar(&fillDryRun, "dry-run", false, "Print what would be created without creating entries")
	fillCmd.Flags().BoolVar(&fillIncludeWeekends, "include-weekends", false, "Include Saturdays and Sundays")
}

func runFill(cmd *cobra.Command, args []string) error {
	if fillFrom == "" || fillTo == "" || fillDesc == "" {
		fmt.Fprintln(os.Stderr, "--from, --to and --desc are required")
		os.Exit(1)
	}

	from, err := time.Parse("2006-01-02", fillFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", fillFrom, err)
		os.Exit(1)
	}
	to, err := time.Parse("2006-01-02", fillTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", fillTo, err)
		os.Exit(1)
	}
	r := plan.Range{From: timecalc.DateOf(from), To: timecalc.DateOf(to)}

	cfg := loadConfig()
	schedule, loc := scheduleLocation(cfg)
	client := newClockifyClient()
	ctx := context.Background()

	ids, err := resolveAll(ctx, client, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	holidaySet, err := newHolidayClient().InRange(ctx, r.From, r.To)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	existing, err := client.ExistingEntryDates(ctx, ids.workspaceID, ids.userID, r.From, r.To, ids.projectID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := plan.Build(plan.Input{
		Range:              r,
		IncludeWeekends:    fillIncludeWeekends,
		Holidays:           holidaySet,
		Existing:           existing,
		Description:        fillDesc,
		HolidayDescription: holidayDescription,
		Schedule:           schedule,
	})

	printSummary(r, p, schedule, fillDesc)
	if len(p.Entries) == 0 {
		fmt.Println("All days in the range already have hours. Nothing to create.")
		return nil
	}

	submitPlan(ctx, client, p, clockify.SubmitOptions{
		WorkspaceID:  ids.workspaceID,
		ProjectID:    ids.projectID,
		TagID:        ids.tagID,
		HolidayTagID: ids.holidayTagID,
		Billable:     *cfg.Billable,
		Schedule:     schedule,
		Location:     loc,
		DryRun:       fillDryRun,
	})
	return nil
}
