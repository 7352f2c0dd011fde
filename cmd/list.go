package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available workspaces, projects and tags",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	client := newClockifyClient()
	ctx := context.Background()

	workspaces, err := client.Workspaces(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(workspaces) == 0 {
		fmt.Println("No workspaces found in your account.")
		return nil
	}

	fmt.Println("Workspaces:")
	for i, ws := range workspaces {
		fmt.Printf("%d. %s (ID: %s)\n", i+1, ws.Name, ws.ID)

		projects, err := client.Projects(ctx, ws.ID)
		if err != nil {
			fmt.Printf("   ! error fetching projects: %v\n", err)
			continue
		}
		if len(projects) == 0 {
			fmt.Println("   no projects")
			continue
		}
		for j, p := range projects {
			fmt.Printf("   %d. %s (ID: %s)\n", j+1, p.Name, p.ID)
		}
	}
	fmt.Println()

	tags, err := client.Tags(ctx, workspaces[0].ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Tags:")
	for i, t := range tags {
		fmt.Printf("%d. %s (ID: %s)\n", i+1, t.Name, t.ID)
	}

	fmt.Println()
	fmt.Println("Copy the names you want into ~/.clockfill/config.json.")
	return nil
}
