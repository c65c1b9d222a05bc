package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(enrollCmd)
}

var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCourseID(args[0])
		if err != nil {
			return err
		}

		c := newClient()
		if _, err := requireSession(cmd, c); err != nil {
			return err
		}

		if err := c.Enroll(cmd.Context(), id); err != nil {
			return fmt.Errorf("enrolling in course %d: %w", id, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in course %d\n", id)
		return nil
	},
}
