package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard stored session tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		newClient().Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}
