package cmd

import (
	"bufio"
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
	weeklyDesc   string
	weeklyDryRun bool
	weeklyYes    bool
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Fill the gap between the last recorded day and this week's Friday",
	Args:  cobra.NoArgs,
	RunE:  runWeekly,
}

func init() {
	weeklyCmd.Flags().StringVar(&weeklyDesc, "desc", "", "Description for work-day entries (prompted when empty)")
	weeklyCmd.Flags().BoolVar(&weeklyDryRun, "dry-run", false, "Print what would be created without creating entries")
	weeklyCmd.Flags().BoolVar(&weeklyYes, "yes", false, "Skip the confirmation prompt")
}

func runWeekly(cmd *cobra.Command, args []string) error {
	today := timecalc.DateOf(time.Now())

	cfg := loadConfig()
	schedule, loc := scheduleLocation(cfg)
	client := newClockifyClient()
	ctx := context.Background()

	fmt.Println("Weekly mode: upload hours from the last recorded day up to this week's Friday.")
	fmt.Println("(Mon-Fri only; days that already have hours are skipped; AR holidays get the holiday tag.)")
	fmt.Println()

	stdin := bufio.NewReader(os.Stdin)
	desc := weeklyDesc
	if desc == "" {
		var err error
		desc, err = promptLine(stdin, os.Stdout, "What did you work on? ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if desc == "" {
			desc = "Trabajo"
		}
		fmt.Println()
	}

	ids, err := resolveAll(ctx, client, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var lastEntry *time.Time
	last, found, err := client.LastEntryDate(ctx, ids.workspaceID, ids.userID, ids.projectID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if found {
		lastEntry = &last
	}

	r := plan.WeeklyRange(lastEntry, today)
	if r.Empty() {
		fmt.Println("No pending workdays in this range.")
		return nil
	}

	existing, err := client.ExistingEntryDates(ctx, ids.workspaceID, ids.userID, r.From, r.To, ids.projectID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	holidaySet, err := newHolidayClient().InRange(ctx, r.From, r.To)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := plan.Build(plan.Input{
		Range:              r,
		Holidays:           holidaySet,
		Existing:           existing,
		Description:        desc,
		HolidayDescription: holidayDescription,
		Schedule:           schedule,
	})

	if len(p.Entries) == 0 {
		fmt.Println("All workdays in the range already have hours. Nothing to create.")
		return nil
	}

	if found {
		fmt.Printf("Last day with hours: %s\n", last.Format("2006-01-02"))
	} else {
		fmt.Println("Last day with hours: none")
	}
	printSummary(r, p, schedule, desc)

	if !weeklyYes && !weeklyDryRun {
		answer, err := promptLine(stdin, os.Stdout, "Create these entries? [y/N]: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if !isAffirmative(answer, cfg.Affirmatives) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	submitPlan(ctx, client, p, clockify.SubmitOptions{
		WorkspaceID:  ids.workspaceID,
		ProjectID:    ids.projectID,
		TagID:        ids.tagID,
		HolidayTagID: ids.holidayTagID,
		Billable:     *cfg.Billable,
		Schedule:     schedule,
		Location:     loc,
		DryRun:       weeklyDryRun,
	})
	return nil
}
