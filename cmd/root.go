package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clockfill",
	Short: "clockfill – batch-create weekday time entries in Clockify",
	Long: `clockfill creates one time entry per pending weekday in Clockify for a
fixed daily schedule, skipping days that already have hours and tagging
Argentina public holidays separately.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(authCmd)
}
