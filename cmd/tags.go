package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List workspace tags and check the holiday tag exists",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := newClockifyClient()
	ctx := context.Background()

	workspaceID, err := client.ResolveWorkspace(ctx, cfg.Workspace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tags, err := client.Tags(ctx, workspaceID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("Tags in your workspace:")
	found := false
	for i, t := range tags {
		mark := ""
		if t.Name == cfg.HolidayTag {
			mark = "  <- holidays"
			found = true
		}
		fmt.Printf("%d. %s (ID: %s)%s\n", i+1, t.Name, t.ID, mark)
	}
	fmt.Println()

	if found {
		fmt.Printf("Holiday tag %q found.\n", cfg.HolidayTag)
		return nil
	}
	fmt.Printf("Holiday tag %q does NOT exist.\n", cfg.HolidayTag)
	fmt.Println("Create a tag with that name in Clockify or change holiday_tag in the config.")
	os.Exit(1)
	return nil
}
