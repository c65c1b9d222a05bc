package cli

import (
	"encoding/json"
	"fmt"

	"github.com/learnly-labs/learnly/internal/session"
	"github.com/spf13/cobra"
)

var dashboardJSON bool

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your dashboard statistics",
	Long:  `Show the dashboard for your role: course progress for students, course and revenue totals for instructors, platform totals for admins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		user, err := requireSession(cmd, c)
		if err != nil {
			return err
		}

		stats, err := c.Dashboard(cmd.Context(), user.Role)
		if err != nil {
			return fmt.Errorf("fetching dashboard: %w", err)
		}

		if dashboardJSON {
			out, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dashboard for %s (%s)\n\n", user.FullName, user.Role)
		switch user.Role {
		case session.RoleStudent:
			fmt.Fprintf(out, "Enrolled courses:  %d\n", stats.TotalCoursesEnrolled)
			fmt.Fprintf(out, "Completed:         %d\n", stats.CompletedCourses)
			fmt.Fprintf(out, "In progress:       %d\n", stats.InProgressCourses)
			fmt.Fprintf(out, "Certificates:      %d\n", stats.TotalCertificates)
			fmt.Fprintf(out, "Average grade:     %.2f\n", stats.AverageGrade)
		case session.RoleInstructor:
			fmt.Fprintf(out, "Courses:           %d\n", stats.TotalCourses)
			fmt.Fprintf(out, "Students:          %d\n", stats.TotalStudents)
			fmt.Fprintf(out, "Revenue:           %.2f\n", stats.TotalRevenue)
		case session.RoleAdmin:
			fmt.Fprintf(out, "Users:             %d\n", stats.TotalUsers)
			fmt.Fprintf(out, "Courses:           %d\n", stats.TotalCourses)
			fmt.Fprintf(out, "Revenue:           %.2f\n", stats.TotalRevenue)
		}
		return nil
	},
}
