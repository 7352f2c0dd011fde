package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvidal/clockfill/internal/secret"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Clockify API key in the OS keyring",
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key in the OS keyring",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuthSet,
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the API key from the OS keyring",
	Args:  cobra.NoArgs,
	RunE:  runAuthClear,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authClearCmd)
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) == 1 {
		key = args[0]
	} else {
		var err error
		key, err = promptLine(bufio.NewReader(os.Stdin), os.Stdout, "Clockify API key: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := secret.Store(key); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("API key stored in the OS keyring.")
	return nil
}

func runAuthClear(cmd *cobra.Command, args []string) error {
	if err := secret.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("API key removed from the OS keyring.")
	return nil
}
