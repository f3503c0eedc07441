// ABOUTME: CLI command for wiping all local data.
// ABOUTME: Resets the app to first-run state; requires confirmation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutForce bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete all local data",
	Long: `Delete the profile, workout history, water ledger, and BMI history,
returning the app to first-run state. Idempotent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !logoutForce {
			fmt.Print("This deletes ALL local data. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := repos.Profile.Logout(); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}

		color.Green("✓ All data deleted")
		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVarP(&logoutForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(logoutCmd)
}
